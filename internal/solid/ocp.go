package solid

import (
	"context"
	"fmt"
	"io"
	"math"
)

type Shape interface {
	Area() float64
}

type Circle struct{ Radius float64 }

func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

type Rectangle struct{ Width, Height float64 }

func (r Rectangle) Area() float64 { return r.Width * r.Height }

// CalculateArea never changes when a new Shape is added.
func CalculateArea(s Shape) float64 { return s.Area() }

// closedAreaCalculator is the violation: every new shape means editing this switch.
func closedAreaCalculator(s any) (float64, error) {
	switch v := s.(type) {
	case Circle:
		return math.Pi * v.Radius * v.Radius, nil
	case Rectangle:
		return v.Width * v.Height, nil
	default:
		return 0, fmt.Errorf("unsupported shape type: %T", s)
	}
}

func OpenClosedDemo(_ context.Context, w io.Writer) error {
	fmt.Fprintf(w, "Area of Circle: %.2f\n", CalculateArea(Circle{Radius: 5}))
	fmt.Fprintf(w, "Area of Rectangle: %.2f\n", CalculateArea(Rectangle{Width: 4, Height: 6}))
	return nil
}
