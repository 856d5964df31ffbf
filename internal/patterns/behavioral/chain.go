package behavioral

import (
	"context"
	"fmt"
	"io"
)

// Handler is a link in a chain of responsibility.
type Handler interface {
	SetNext(next Handler)
	Handle(w io.Writer, number int)
}

// baseHandler carries the link to the next handler.
type baseHandler struct {
	next Handler
}

func (b *baseHandler) SetNext(next Handler) { b.next = next }

func (b *baseHandler) forward(w io.Writer, number int) {
	if b.next != nil {
		b.next.Handle(w, number)
	}
}

type EvenHandler struct{ baseHandler }

func (h *EvenHandler) Handle(w io.Writer, number int) {
	if number%2 == 0 {
		fmt.Fprintf(w, "EvenHandler handled: %d\n", number)
		return
	}
	h.forward(w, number)
}

type OddHandler struct{ baseHandler }

func (h *OddHandler) Handle(w io.Writer, number int) {
	if number%2 != 0 {
		fmt.Fprintf(w, "OddHandler handled: %d\n", number)
		return
	}
	h.forward(w, number)
}

// Chain links handlers in order and returns the head, or nil for an empty chain.
func Chain(handlers ...Handler) Handler {
	if len(handlers) == 0 {
		return nil
	}
	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	return handlers[0]
}

func ChainOfResponsibilityDemo(ctx context.Context, w io.Writer) error {
	head := Chain(&EvenHandler{}, &OddHandler{})

	for _, n := range []int{2, 3, 4, 5, 6, 7, 8, 9, 11, 15} {
		if err := ctx.Err(); err != nil {
			return err
		}
		head.Handle(w, n)
	}
	return nil
}
