package behavioral

import (
	"context"
	"fmt"
	"io"
	"iter"
)

// IntIterator walks an aggregate without exposing how it stores its items.
type IntIterator interface {
	HasNext() bool
	Next() int
}

// SimpleIntArray is the aggregate; it hands out independent iterators.
type SimpleIntArray struct {
	data []int
}

func NewSimpleIntArray(data ...int) *SimpleIntArray {
	cp := make([]int, len(data))
	copy(cp, data)
	return &SimpleIntArray{data: cp}
}

func (a *SimpleIntArray) CreateIterator() IntIterator {
	return &simpleIntArrayIterator{data: a.data}
}

type simpleIntArrayIterator struct {
	data  []int
	index int
}

func (it *simpleIntArrayIterator) HasNext() bool { return it.index < len(it.data) }

// Next panics past the end, like indexing a slice out of range.
func (it *simpleIntArrayIterator) Next() int {
	v := it.data[it.index]
	it.index++
	return v
}

// SliceIter is the Go-shaped iterator: Next advances, Value reads, Err and
// Close let resource-backed iterators report failures and release handles.
type SliceIter[T any] struct {
	items  []T
	index  int
	value  T
	closed bool
}

func Slice[T any](items []T) *SliceIter[T] {
	return &SliceIter[T]{items: items}
}

func (i *SliceIter[T]) Next() bool {
	if i.closed || i.index >= len(i.items) {
		return false
	}
	i.value = i.items[i.index]
	i.index++
	return true
}

func (i *SliceIter[T]) Value() T { return i.value }

func (i *SliceIter[T]) Err() error { return nil }

func (i *SliceIter[T]) Close() error {
	i.closed = true
	return nil
}

// All adapts the remaining items to a range-over-func sequence.
func (i *SliceIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i.Next() {
			if !yield(i.Value()) {
				return
			}
		}
	}
}

func IteratorDemo(ctx context.Context, w io.Writer) error {
	numbers := NewSimpleIntArray(1, 2, 3, 4, 5)

	it := numbers.CreateIterator()
	for it.HasNext() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(w, it.Next())
	}
	return nil
}
