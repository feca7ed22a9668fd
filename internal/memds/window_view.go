package memds

import (
	"fmt"
	"strconv"
)

var (
	ErrNegativeLength = fmt.Errorf("%w: negative window length", ErrInvalidArgument)
)

// WindowView is a thread unsafe view over the contiguous range [start, start+length) of a Buffer.
// Reads and writes go through to the buffer, so views over overlapping ranges observe each other's writes.
// An unbounded view has no fixed length: it always extends to the current end of the buffer.
//
// Bounds are never checked when a view is created or sliced, out of range windows are reported by the
// first operation that accesses the buffer.
type WindowView[T any] struct {
	buffer  *Buffer[T]
	start   int
	length  int
	bounded bool
}

// NewWindowView returns an unbounded view starting at start.
func NewWindowView[T any](buffer *Buffer[T], start int) *WindowView[T] {
	return &WindowView[T]{
		buffer: buffer,
		start:  start,
	}
}

// NewBoundedWindowView returns a view over [start, start+length), ErrNegativeLength is returned if length is negative.
func NewBoundedWindowView[T any](buffer *Buffer[T], start int, length int) (*WindowView[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	return &WindowView[T]{
		buffer:  buffer,
		start:   start,
		length:  length,
		bounded: true,
	}, nil
}

func (v *WindowView[T]) Buffer() *Buffer[T] {
	return v.buffer
}

func (v *WindowView[T]) Start() int {
	return v.start
}

func (v *WindowView[T]) IsBounded() bool {
	return v.bounded
}

// Len returns the length of the window, the length of an unbounded view is computed from the current length of the buffer.
func (v *WindowView[T]) Len() int {
	if v.bounded {
		return v.length
	}
	return v.buffer.Len() - v.start
}

// Get returns a copy of the elements in the window.
func (v *WindowView[T]) Get() ([]T, error) {
	return v.buffer.Range(v.start, v.end())
}

// Set replaces the elements in the window with values. If len(values) != v.Len() the buffer's length changes:
// unbounded views follow the new length but bounded views keep their length, and any view starting
// after the window now refers to shifted elements.
func (v *WindowView[T]) Set(values []T) error {
	return v.buffer.Splice(v.start, v.end(), values)
}

func (v *WindowView[T]) At(offset int) (T, error) {
	return v.buffer.At(v.start + offset)
}

func (v *WindowView[T]) SetAt(offset int, value T) error {
	return v.buffer.Set(v.start+offset, value)
}

// Slice returns a view over [startOffset, endOffset) of this view's window, the buffer is shared.
func (v *WindowView[T]) Slice(startOffset, endOffset int) *WindowView[T] {
	return &WindowView[T]{
		buffer:  v.buffer,
		start:   v.start + startOffset,
		length:  endOffset - startOffset,
		bounded: true,
	}
}

// SliceFrom returns a view over the part of this view's window starting at startOffset.
// The result is unbounded if v is unbounded.
func (v *WindowView[T]) SliceFrom(startOffset int) *WindowView[T] {
	slice := &WindowView[T]{
		buffer: v.buffer,
		start:  v.start + startOffset,
	}
	if v.bounded {
		slice.length = v.length - startOffset
		slice.bounded = true
	}
	return slice
}

func (v *WindowView[T]) SetSlice(startOffset, endOffset int, values []T) error {
	return v.Slice(startOffset, endOffset).Set(values)
}

func (v *WindowView[T]) SetSliceFrom(startOffset int, values []T) error {
	return v.SliceFrom(startOffset).Set(values)
}

// Iterator returns an iterator over a snapshot of the window, later writes are not observed by the iterator.
func (v *WindowView[T]) Iterator() (*WindowIterator[T], error) {
	elements, err := v.Get()
	if err != nil {
		return nil, err
	}
	return &WindowIterator[T]{
		index:    -1,
		elements: elements,
	}, nil
}

func (v *WindowView[T]) String() string {
	length := "unbounded"
	if v.bounded {
		length = strconv.Itoa(v.length)
	}
	return fmt.Sprintf("WindowView(%s, %d, %s)", v.buffer, v.start, length)
}

func (v *WindowView[T]) end() int {
	return v.start + v.Len()
}

type WindowIterator[T any] struct {
	index    int
	elements []T
}

func (it *WindowIterator[T]) Next() bool {
	if it.index >= len(it.elements)-1 {
		return false
	}
	it.index++
	return true
}

func (it *WindowIterator[T]) Value() T {
	return it.elements[it.index]
}

func (it *WindowIterator[T]) Index() int {
	return it.index
}
