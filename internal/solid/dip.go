package solid

import (
	"context"
	"fmt"
	"io"
)

// MessageService is the abstraction both sides depend on.
type MessageService interface {
	SendMessage(message, recipient string)
}

type EmailService struct{ out io.Writer }

func (s EmailService) SendMessage(message, recipient string) {
	fmt.Fprintf(s.out, "Email sent to %s: %s\n", recipient, message)
}

type SMSService struct{ out io.Writer }

func (s SMSService) SendMessage(message, recipient string) {
	fmt.Fprintf(s.out, "SMS sent to %s: %s\n", recipient, message)
}

// Notification is the high-level module; the transport is injected.
type Notification struct {
	service MessageService
}

func NewNotification(s MessageService) *Notification { return &Notification{service: s} }

func (n *Notification) NotifyUser(message, recipient string) {
	n.service.SendMessage(message, recipient)
}

// EmailSender is a concrete low-level module with its own method shape.
type EmailSender struct{ out io.Writer }

func (s EmailSender) SendEmail(message, recipient string) {
	fmt.Fprintf(s.out, "Email sent to %s: %s\n", recipient, message)
}

// TightNotification is the violation: it is welded to EmailSender.
type TightNotification struct {
	email EmailSender
}

func (n TightNotification) NotifyUser(message, recipient string) {
	n.email.SendEmail(message, recipient)
}

func DependencyInversionDemo(_ context.Context, w io.Writer) error {
	NewNotification(EmailService{out: w}).NotifyUser("Hello, DIP!", "user@example.com")
	NewNotification(SMSService{out: w}).NotifyUser("Hello, DIP via SMS!", "123-456-7890")
	return nil
}

func NoDependencyInversionDemo(_ context.Context, w io.Writer) error {
	TightNotification{email: EmailSender{out: w}}.NotifyUser("Hello, no DIP!", "user@example.com")
	return nil
}
