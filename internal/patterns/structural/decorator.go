package structural

import (
	"context"
	"fmt"
	"io"
)

type Text interface {
	Format() string
}

type PlainText string

func (t PlainText) Format() string { return string(t) }

type BoldText struct{ Inner Text }

func (t BoldText) Format() string { return "<b>" + t.Inner.Format() + "</b>" }

type ItalicText struct{ Inner Text }

func (t ItalicText) Format() string { return "<i>" + t.Inner.Format() + "</i>" }

func DecoratorDemo(_ context.Context, w io.Writer) error {
	plain := PlainText("Hello, World!")
	bold := BoldText{Inner: plain}
	italicBold := ItalicText{Inner: bold}

	for _, t := range []Text{plain, bold, italicBold} {
		fmt.Fprintln(w, t.Format())
	}
	return nil
}
