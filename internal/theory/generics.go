package theory

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Box holds a single item of any type.
type Box[T any] struct {
	item T
	set  bool
}

func (b *Box[T]) Set(item T) {
	b.item = item
	b.set = true
}

// Get returns the item and whether one was set.
func (b *Box[T]) Get() (T, bool) { return b.item, b.set }

// Number constrains Sum to numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Sum[N Number](values ...N) N {
	var total N
	for _, v := range values {
		total += v
	}
	return total
}

// FormatSlice renders elements separated by spaces.
func FormatSlice[E any](items []E) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprint(it)
	}
	return strings.Join(parts, " ")
}

func PrintSlice[E any](w io.Writer, items []E) {
	fmt.Fprintln(w, FormatSlice(items))
}

// Map transforms every element; the result type is inferred at the call site.
func Map[E, R any](items []E, fn func(E) R) []R {
	out := make([]R, len(items))
	for i, it := range items {
		out[i] = fn(it)
	}
	return out
}

func GenericsDemo(_ context.Context, w io.Writer) error {
	var intBox Box[int]
	intBox.Set(123)
	v, _ := intBox.Get()
	fmt.Fprintf(w, "Integer Box contains: %d\n", v)

	var strBox Box[string]
	strBox.Set("Hello Generics")
	s, _ := strBox.Get()
	fmt.Fprintf(w, "String Box contains: %s\n", s)

	PrintSlice(w, []string{"A", "B", "C"})
	PrintSlice(w, []int{1, 2, 3})

	fmt.Fprintf(w, "Sum of ints: %d\n", Sum(1, 2, 3))
	fmt.Fprintf(w, "Sum of floats: %.1f\n", Sum(1.5, 2.5))
	fmt.Fprintf(w, "Lengths: %s\n", FormatSlice(Map([]string{"go", "java"}, func(s string) int { return len(s) })))
	return nil
}
