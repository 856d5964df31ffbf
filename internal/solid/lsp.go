package solid

import (
	"context"
	"fmt"
	"io"
)

// Bird promises every bird can fly, which Penguin cannot honour.
type Bird interface {
	Fly(w io.Writer)
}

type Sparrow struct{}

func (Sparrow) Fly(w io.Writer) { fmt.Fprintln(w, "Sparrow is flying.") }

// Penguin breaks the contract: it satisfies Bird but does not fly.
type Penguin struct{}

func (Penguin) Fly(w io.Writer) { fmt.Fprintln(w, "Penguins can't fly.") }

func MakeBirdFly(w io.Writer, b Bird) { b.Fly(w) }

// The compliant hierarchy only promises what every member can do.
type Animal interface {
	Name() string
}

type Flyer interface {
	Animal
	Fly(w io.Writer)
}

type FlyingSparrow struct{}

func (FlyingSparrow) Name() string    { return "Sparrow" }
func (FlyingSparrow) Fly(w io.Writer) { fmt.Fprintln(w, "Sparrow is flying.") }

type SwimmingPenguin struct{}

func (SwimmingPenguin) Name() string { return "Penguin" }

// Launch only accepts animals that can actually fly.
func Launch(w io.Writer, f Flyer) { f.Fly(w) }

func LiskovSubstitutionDemo(_ context.Context, w io.Writer) error {
	MakeBirdFly(w, Sparrow{})
	MakeBirdFly(w, Penguin{})

	fmt.Fprintln(w, "-- compliant --")
	for _, a := range []Animal{FlyingSparrow{}, SwimmingPenguin{}} {
		if f, ok := a.(Flyer); ok {
			Launch(w, f)
			continue
		}
		fmt.Fprintf(w, "%s stays on the ground.\n", a.Name())
	}
	return nil
}
