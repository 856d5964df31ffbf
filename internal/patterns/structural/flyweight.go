package structural

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Font is the flyweight: its name is intrinsic, the text it is applied to is extrinsic.
type Font interface {
	Apply(w io.Writer, text string)
	Name() string
}

type concreteFont struct {
	name string
}

func (f *concreteFont) Apply(w io.Writer, text string) {
	fmt.Fprintf(w, "Applying font: %s to text: %s\n", f.name, text)
}

func (f *concreteFont) Name() string { return f.name }

// FontFactory hands out one shared Font per name.
type FontFactory struct {
	mu    sync.Mutex
	fonts map[string]Font
	out   io.Writer
}

func NewFontFactory(out io.Writer) *FontFactory {
	if out == nil {
		out = io.Discard
	}
	return &FontFactory{fonts: make(map[string]Font), out: out}
}

func (f *FontFactory) Font(name string) Font {
	f.mu.Lock()
	defer f.mu.Unlock()

	if font, ok := f.fonts[name]; ok {
		fmt.Fprintf(f.out, "Reusing existing font: %s\n", name)
		return font
	}

	font := &concreteFont{name: name}
	f.fonts[name] = font
	fmt.Fprintf(f.out, "Creating new font: %s\n", name)
	return font
}

// Size reports how many distinct fonts exist.
func (f *FontFactory) Size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fonts)
}

func FlyweightDemo(_ context.Context, w io.Writer) error {
	factory := NewFontFactory(w)

	factory.Font("Arial").Apply(w, "Hello, World!")
	factory.Font("Arial").Apply(w, "Flyweight Pattern")
	factory.Font("Times New Roman").Apply(w, "Design Patterns")
	return nil
}
