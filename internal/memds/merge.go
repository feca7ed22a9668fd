package memds

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrMergeConflict = errors.New("merge conflict")
)

// MergeConflictError is returned when a non-null value is merged into a slot that already holds a non-null value.
type MergeConflictError[T any] struct {
	Offset   int
	Current  T
	Incoming T
}

func (e *MergeConflictError[T]) Error() string {
	return fmt.Sprintf("merge conflict at offset %d: %v into %v", e.Offset, e.Incoming, e.Current)
}

func (e *MergeConflictError[T]) Is(target error) bool {
	return target == ErrMergeConflict
}

// MergeItem merges value into the slot at offset, nil values are null (see IsNil).
func (v *WindowView[T]) MergeItem(offset int, value T) error {
	return v.MergeItemWith(offset, value, IsNil[T])
}

// MergeItemWith merges value into the slot at offset:
//   - if the current value is null it is replaced by value.
//   - else if value is null nothing happens.
//   - else a *MergeConflictError is returned and the slot is left unchanged, even if both values are equal.
func (v *WindowView[T]) MergeItemWith(offset int, value T, isNull NullPredicate[T]) error {
	current, err := v.At(offset)
	if err != nil {
		return err
	}

	if isNull(current) {
		return v.SetAt(offset, value)
	}
	if isNull(value) {
		return nil
	}

	v.buffer.logger.Debug().
		Int("start", v.start).
		Int("offset", offset).
		Msg("merge conflict")

	return &MergeConflictError[T]{
		Offset:   offset,
		Current:  current,
		Incoming: value,
	}
}

// Merge merges values[i] into the slot at offset i for every offset of the window, nil values are null.
func (v *WindowView[T]) Merge(values []T) error {
	return v.MergeWith(values, IsNil[T])
}

// MergeWith merges values[i] into the slot at offset i for every offset of the window.
// The merge stops at the first error (conflict or missing value), slots merged before it are not restored.
func (v *WindowView[T]) MergeWith(values []T, isNull NullPredicate[T]) error {
	length := v.Len()

	for offset := 0; offset < length; offset++ {
		if offset >= len(values) {
			return fmt.Errorf("%w: no value to merge at offset %d, %d values for a window of length %d",
				ErrIndexOutOfRange, offset, len(values), length)
		}
		if err := v.MergeItemWith(offset, values[offset], isNull); err != nil {
			return err
		}
	}
	return nil
}

// FilledOffsets returns a bitset in which bit i is set if the slot at offset i is not nil.
func (v *WindowView[T]) FilledOffsets() (*bitset.BitSet, error) {
	return v.FilledOffsetsWith(IsNil[T])
}

func (v *WindowView[T]) FilledOffsetsWith(isNull NullPredicate[T]) (*bitset.BitSet, error) {
	elements, err := v.Get()
	if err != nil {
		return nil, err
	}

	filled := bitset.New(uint(len(elements)))
	for i, e := range elements {
		if !isNull(e) {
			filled.Set(uint(i))
		}
	}
	return filled, nil
}

// IsComplete returns true if no slot of the window is nil.
func (v *WindowView[T]) IsComplete() (bool, error) {
	return v.IsCompleteWith(IsNil[T])
}

func (v *WindowView[T]) IsCompleteWith(isNull NullPredicate[T]) (bool, error) {
	filled, err := v.FilledOffsetsWith(isNull)
	if err != nil {
		return false, err
	}
	return filled.All(), nil
}
