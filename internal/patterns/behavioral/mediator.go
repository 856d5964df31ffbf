package behavioral

import (
	"context"
	"fmt"
	"io"
)

// SenderMediator routes a message from one colleague to the other.
type SenderMediator interface {
	SendMessage(message string, from Colleague)
}

type Colleague interface {
	Receive(message string)
}

// User is a chat participant that only knows the mediator.
type User struct {
	name     string
	mediator SenderMediator
	out      io.Writer
}

func NewUser(name string, mediator SenderMediator, out io.Writer) *User {
	return &User{name: name, mediator: mediator, out: out}
}

func (u *User) Send(message string) { u.mediator.SendMessage(message, u) }

func (u *User) Receive(message string) {
	fmt.Fprintf(u.out, "%s received: %s\n", u.name, message)
}

// ChatMediator connects exactly two participants.
type ChatMediator struct {
	userA Colleague
	userB Colleague
}

func (m *ChatMediator) SetUserA(c Colleague) { m.userA = c }
func (m *ChatMediator) SetUserB(c Colleague) { m.userB = c }

// SendMessage delivers to the other participant; unknown senders are ignored.
func (m *ChatMediator) SendMessage(message string, from Colleague) {
	switch {
	case from == nil:
		return
	case from == m.userA && m.userB != nil:
		m.userB.Receive(message)
	case from == m.userB && m.userA != nil:
		m.userA.Receive(message)
	}
}

func MediatorDemo(_ context.Context, w io.Writer) error {
	chat := &ChatMediator{}

	userA := NewUser("UserA", chat, w)
	userB := NewUser("UserB", chat, w)

	chat.SetUserA(userA)
	chat.SetUserB(userB)

	userA.Send("Hello, UserB!")
	userB.Send("Hi, UserA! How are you?")
	return nil
}
