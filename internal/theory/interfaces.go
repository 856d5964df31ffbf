package theory

import (
	"context"
	"fmt"
	"io"
)

// Small, single-method interfaces are the starting point.
type Greeter interface {
	Greet(w io.Writer)
}

// Embedding composes larger contracts from smaller ones.
type Farewell interface {
	Bye(w io.Writer)
}

type Host interface {
	Greeter
	Farewell
}

// Generic methods are not allowed, so type parameters live on functions and on
// constraint interfaces instead.
type Stringish interface {
	~string
}

func Describe[T Stringish](w io.Writer, item T) {
	fmt.Fprintf(w, "Generic function called with: %s\n", item)
}

// BaseHost supplies default behaviour that implementers get by embedding it,
// the closest thing to a default method.
type BaseHost struct{}

func (BaseHost) Bye(w io.Writer) { fmt.Fprintln(w, "Default behaviour via embedded struct") }

// NewDefaultHost plays the role of a static factory living next to the contract.
func NewDefaultHost() Host { return politeHost{} }

type politeHost struct {
	BaseHost
}

func (politeHost) Greet(w io.Writer) {
	fmt.Fprintln(w, "Greet implemented by the concrete type")
	helper(w)
}

// helper is unexported: shared code the contract's users never see.
func helper(w io.Writer) { fmt.Fprintln(w, "Unexported helper shared by implementations") }

// Implicit satisfaction: nothing declares "implements".
var _ Host = politeHost{}

func InterfacesDemo(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "History of interfaces, the Go way")
	Describe(w, "Test")

	h := NewDefaultHost()
	h.Greet(w)
	h.Bye(w)

	_, isGreeter := any(h).(Greeter)
	fmt.Fprintf(w, "Host satisfies Greeter implicitly: %t\n", isGreeter)
	return nil
}
