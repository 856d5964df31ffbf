package structural

import (
	"context"
	"fmt"
	"io"
)

// Renderer is the implementation side of the bridge.
type Renderer interface {
	Render(shape string)
}

type ConsoleRenderer struct{ Out io.Writer }

func (r ConsoleRenderer) Render(shape string) {
	fmt.Fprintf(r.Out, "Rendering %s on Console\n", shape)
}

type VectorRenderer struct{ Out io.Writer }

func (r VectorRenderer) Render(shape string) {
	fmt.Fprintf(r.Out, "Drawing %s as vector paths\n", shape)
}

// Shape is the abstraction side; it varies independently of Renderer.
type Shape interface {
	Draw()
}

type Circle struct{ renderer Renderer }

func NewCircle(r Renderer) *Circle { return &Circle{renderer: r} }

func (c *Circle) Draw() { c.renderer.Render("Circle") }

type Square struct{ renderer Renderer }

func NewSquare(r Renderer) *Square { return &Square{renderer: r} }

func (s *Square) Draw() { s.renderer.Render("Square") }

func BridgeDemo(_ context.Context, w io.Writer) error {
	for _, r := range []Renderer{ConsoleRenderer{Out: w}, VectorRenderer{Out: w}} {
		for _, s := range []Shape{NewCircle(r), NewSquare(r)} {
			s.Draw()
		}
	}
	return nil
}
