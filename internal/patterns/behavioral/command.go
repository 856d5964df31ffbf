package behavioral

import (
	"context"
	"fmt"
	"io"
)

// Command turns a request into a value that can be stored and executed later.
type Command interface {
	Execute(w io.Writer)
	Name() string
}

type HelloCommand struct{ Recipient string }

func (c HelloCommand) Execute(w io.Writer) { fmt.Fprintf(w, "Hello, %s!\n", c.Recipient) }
func (c HelloCommand) Name() string        { return "hello" }

type GoodbyeCommand struct{ Recipient string }

func (c GoodbyeCommand) Execute(w io.Writer) { fmt.Fprintf(w, "Goodbye, %s!\n", c.Recipient) }
func (c GoodbyeCommand) Name() string        { return "goodbye" }

// Invoker holds the current command and remembers what it ran.
type Invoker struct {
	command Command
	history []string
}

func (i *Invoker) SetCommand(c Command) { i.command = c }

// ExecuteCommand runs the current command. It does nothing when no command is set.
func (i *Invoker) ExecuteCommand(w io.Writer) {
	if i.command == nil {
		return
	}
	i.command.Execute(w)
	i.history = append(i.history, i.command.Name())
}

// History returns the names of executed commands, oldest first.
func (i *Invoker) History() []string {
	out := make([]string, len(i.history))
	copy(out, i.history)
	return out
}

func CommandDemo(_ context.Context, w io.Writer) error {
	var invoker Invoker

	invoker.SetCommand(HelloCommand{Recipient: "Alice"})
	invoker.ExecuteCommand(w)

	invoker.SetCommand(GoodbyeCommand{Recipient: "Bob"})
	invoker.ExecuteCommand(w)

	return nil
}
