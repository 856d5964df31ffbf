package structural

import (
	"context"
	"fmt"
	"io"
)

// NewPrinter is what clients expect.
type NewPrinter interface {
	Print(text string)
}

// OldPrinter is the legacy contract.
type OldPrinter interface {
	OldPrint(text string)
}

type LegacyPrinter struct{ Out io.Writer }

func (p LegacyPrinter) OldPrint(text string) { fmt.Fprintf(p.Out, "OldPrinter: %s\n", text) }

// PrinterAdapter satisfies NewPrinter on top of an OldPrinter.
type PrinterAdapter struct {
	old OldPrinter
}

func NewPrinterAdapter(old OldPrinter) *PrinterAdapter { return &PrinterAdapter{old: old} }

func (a *PrinterAdapter) Print(text string) { a.old.OldPrint(text) }

// PrinterFunc lets a plain function act as a NewPrinter, the way http.HandlerFunc does.
type PrinterFunc func(text string)

func (f PrinterFunc) Print(text string) { f(text) }

func AdapterDemo(_ context.Context, w io.Writer) error {
	var printer NewPrinter = NewPrinterAdapter(LegacyPrinter{Out: w})
	printer.Print("Hello, Adapter Pattern!")
	return nil
}
