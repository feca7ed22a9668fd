package memds

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Buffer is a thread unsafe, resizable sequence of elements that can be shared by several views.
// Go slices stop aliasing each other as soon as one of them is resized, so views hold a *Buffer
// instead of a slice.
type Buffer[T any] struct {
	id       ulid.ULID
	elements []T
	logger   zerolog.Logger
}

type BufferConfig struct {
	Logger zerolog.Logger //ok if not set
}

// NewBuffer returns a buffer wrapping elements, the slice is not copied.
func NewBuffer[T any](elements ...T) *Buffer[T] {
	return NewBufferWithConfig(BufferConfig{}, elements...)
}

func NewBufferWithConfig[T any](config BufferConfig, elements ...T) *Buffer[T] {
	id := ulid.Make()

	return &Buffer[T]{
		id:       id,
		elements: elements,
		logger:   config.Logger.With().Str("buffer", id.String()).Logger(),
	}
}

func (b *Buffer[T]) ID() ulid.ULID {
	return b.id
}

func (b *Buffer[T]) Len() int {
	return len(b.elements)
}

func (b *Buffer[T]) At(i int) (T, error) {
	if err := b.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return b.elements[i], nil
}

func (b *Buffer[T]) Set(i int, v T) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.elements[i] = v
	return nil
}

// Range returns a copy of the elements in [start, end).
func (b *Buffer[T]) Range(start, end int) ([]T, error) {
	if err := b.checkRange(start, end); err != nil {
		return nil, err
	}
	return slices.Clone(b.elements[start:end]), nil
}

// Splice replaces the elements in [start, end) with values, the length of the buffer
// changes by len(values) - (end - start).
func (b *Buffer[T]) Splice(start, end int, values []T) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}

	removed := end - start
	if len(values) == removed {
		copy(b.elements[start:end], values)
		return nil
	}

	b.elements = slices.Replace(b.elements, start, end, values...)

	b.logger.Debug().
		Int("start", start).
		Int("removed", removed).
		Int("inserted", len(values)).
		Int("len", len(b.elements)).
		Msg("buffer spliced")
	return nil
}

// Append adds zero or more values to the end of the buffer.
func (b *Buffer[T]) Append(values ...T) {
	b.elements = append(b.elements, values...)
}

// Values returns a copy of all the elements.
func (b *Buffer[T]) Values() []T {
	return slices.Clone(b.elements)
}

func (b *Buffer[T]) String() string {
	buf := &strings.Builder{}
	buf.WriteString("Buffer(")
	buf.WriteString(b.id.String())
	buf.WriteString(")[")

	for i, e := range b.elements {
		if i != 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%v", e)
	}
	buf.WriteByte(']')
	return buf.String()
}

func (b *Buffer[T]) checkIndex(i int) error {
	if i < 0 || i >= len(b.elements) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(b.elements))
	}
	return nil
}

func (b *Buffer[T]) checkRange(start, end int) error {
	if start < 0 || end > len(b.elements) || start > end {
		return fmt.Errorf("%w: range [%d, %d), length %d", ErrIndexOutOfRange, start, end, len(b.elements))
	}
	return nil
}
