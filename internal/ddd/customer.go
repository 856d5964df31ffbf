package ddd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrBlankName = errors.New("customer name is blank")

const (
	EventCustomerRegistered = "customer.registered"
	EventCustomerRenamed    = "customer.renamed"
)

type CustomerRegistered struct {
	BaseEvent
	Name  string
	Email EmailAddress
}

type CustomerRenamed struct {
	BaseEvent
	From string
	To   string
}

// Customer is an example aggregate root.
type Customer struct {
	AggregateRoot[uuid.UUID]
	name  string
	email EmailAddress
	now   func() time.Time
}

type CustomerOption func(*Customer)

// WithClock is useful for tests.
func WithClock(now func() time.Time) CustomerOption {
	return func(c *Customer) { c.now = now }
}

func RegisterCustomer(name string, email EmailAddress, opts ...CustomerOption) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	if email.IsZero() {
		return nil, ErrInvalidEmail
	}

	c := &Customer{
		AggregateRoot: NewAggregateRoot(uuid.New()),
		name:          name,
		email:         email,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Record(CustomerRegistered{
		BaseEvent: NewBaseEvent(EventCustomerRegistered, c.now()),
		Name:      name,
		Email:     email,
	})
	return c, nil
}

func (c *Customer) Name() string        { return c.name }
func (c *Customer) Email() EmailAddress { return c.email }

// Rename changes the name; renaming to the same name records nothing.
func (c *Customer) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	if name == c.name {
		return nil
	}

	from := c.name
	c.name = name
	c.Record(CustomerRenamed{
		BaseEvent: NewBaseEvent(EventCustomerRenamed, c.now()),
		From:      from,
		To:        name,
	})
	return nil
}

func DDDDemo(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Domain-Driven Design (DDD) example placeholder.")

	email, err := NewEmailAddress("Ada@Example.com")
	if err != nil {
		return err
	}

	customer, err := RegisterCustomer("Ada Lovelace", email)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Registered customer %s <%s>\n", customer.Name(), customer.Email())

	if err := customer.Rename("Ada King"); err != nil {
		return err
	}
	fmt.Fprintf(w, "Renamed customer to %s\n", customer.Name())

	names := make([]string, 0, customer.PendingEvents())
	for _, ev := range customer.PullEvents() {
		names = append(names, ev.EventName())
	}
	fmt.Fprintf(w, "Events: %s\n", strings.Join(names, ", "))

	repo := NewMemoryRepository[uuid.UUID, *Customer]()
	if err := repo.Save(ctx, customer); err != nil {
		return err
	}
	reloaded, err := repo.FindByID(ctx, customer.ID())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Reloaded customer %s from repository\n", reloaded.Name())

	same, _ := NewEmailAddress(" ada@example.COM ")
	fmt.Fprintf(w, "Value objects equal: %t\n", same == customer.Email())
	return nil
}
