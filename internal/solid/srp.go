package solid

import (
	"context"
	"fmt"
	"io"
)

// Invoice only holds data.
type Invoice struct {
	Amount float64
}

// InvoiceRepository owns persistence.
type InvoiceRepository struct{ out io.Writer }

func (r InvoiceRepository) Save(i Invoice) {
	fmt.Fprintf(r.out, "Saving invoice: %v\n", i.Amount)
}

// InvoicePrinter owns presentation.
type InvoicePrinter struct{ out io.Writer }

func (p InvoicePrinter) Print(i Invoice) {
	fmt.Fprintf(p.out, "Invoice amount: %v\n", i.Amount)
}

func SingleResponsibilityDemo(_ context.Context, w io.Writer) error {
	inv := Invoice{Amount: 99.0}
	InvoiceRepository{out: w}.Save(inv)
	InvoicePrinter{out: w}.Print(inv)
	return nil
}
