package solid

import (
	"context"
	"fmt"
	"io"
)

type Printer interface {
	Print(document string)
}

type Scanner interface {
	Scan(document string)
}

type BasicPrinter struct{ out io.Writer }

func (p BasicPrinter) Print(doc string) { fmt.Fprintf(p.out, "Printing: %s\n", doc) }

type MultiFunctionPrinter struct{ out io.Writer }

func (p MultiFunctionPrinter) Print(doc string) { fmt.Fprintf(p.out, "MFP Printing: %s\n", doc) }
func (p MultiFunctionPrinter) Scan(doc string)  { fmt.Fprintf(p.out, "MFP Scanning: %s\n", doc) }

func InterfaceSegregationDemo(_ context.Context, w io.Writer) error {
	var printer Printer = BasicPrinter{out: w}
	printer.Print("Hello, ISP!")

	mfp := MultiFunctionPrinter{out: w}
	mfp.Print("Hello, ISP with MFP!")
	mfp.Scan("Document to scan")
	return nil
}
