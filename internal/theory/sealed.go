package theory

import (
	"context"
	"fmt"
	"io"
	"math"
)

// Animal is open: any type in any package with a Sound method is an Animal.
type Animal interface {
	Sound() string
}

type Dog struct{}

func (Dog) Sound() string { return "woof" }

type Cat struct{}

func (Cat) Sound() string { return "meow" }

// Shape is closed: the unexported method means only this package can add variants.
type Shape interface {
	Area() float64
	sealedShape()
}

type CircleShape struct{ Radius float64 }

func (c CircleShape) Area() float64 { return math.Pi * c.Radius * c.Radius }
func (CircleShape) sealedShape()    {}

type RectangleShape struct{ Width, Height float64 }

func (r RectangleShape) Area() float64 { return r.Width * r.Height }
func (RectangleShape) sealedShape()    {}

// FancyRectangle embeds RectangleShape and inherits the seal, so it is a Shape
// too. Any package may embed RectangleShape, which leaves that branch open.
type FancyRectangle struct {
	RectangleShape
	Border string
}

// DescribeShape switches over the variants declared here. Pointer variants
// satisfy Shape through their value methods and are described like values.
func DescribeShape(s Shape) string {
	switch p := s.(type) {
	case *CircleShape:
		if p != nil {
			s = *p
		}
	case *FancyRectangle:
		if p != nil {
			s = *p
		}
	case *RectangleShape:
		if p != nil {
			s = *p
		}
	}

	switch v := s.(type) {
	case CircleShape:
		return fmt.Sprintf("circle r=%.0f", v.Radius)
	case FancyRectangle:
		return fmt.Sprintf("fancy rectangle %.0fx%.0f (%s border)", v.Width, v.Height, v.Border)
	case RectangleShape:
		return fmt.Sprintf("rectangle %.0fx%.0f", v.Width, v.Height)
	default:
		return fmt.Sprintf("unknown shape %T", s)
	}
}

func SealedDemo(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Open hierarchy:")
	for _, a := range []Animal{Dog{}, Cat{}} {
		fmt.Fprintf(w, "  %T says %s\n", a, a.Sound())
	}

	fmt.Fprintln(w, "Sealed hierarchy:")
	shapes := []Shape{
		CircleShape{Radius: 1},
		RectangleShape{Width: 2, Height: 3},
		FancyRectangle{RectangleShape: RectangleShape{Width: 4, Height: 5}, Border: "dotted"},
	}
	for _, s := range shapes {
		fmt.Fprintf(w, "  %s area=%.2f\n", DescribeShape(s), s.Area())
	}
	return nil
}
