package theory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrBlankName   = errors.New("name blank")
	ErrNegativeAge = errors.New("age negative")
)

// PersonRecord is an immutable data carrier: unexported fields, a validating
// constructor, accessors, and structural equality with ==.
type PersonRecord struct {
	name string
	age  int
}

func NewPersonRecord(name string, age int) (PersonRecord, error) {
	if strings.TrimSpace(name) == "" {
		return PersonRecord{}, ErrBlankName
	}
	if age < 0 {
		return PersonRecord{}, ErrNegativeAge
	}
	return PersonRecord{name: name, age: age}, nil
}

func (p PersonRecord) Name() string { return p.name }
func (p PersonRecord) Age() int     { return p.age }

func (p PersonRecord) Greet() string {
	return fmt.Sprintf("Hi, I'm %s and I'm %d years old", p.name, p.age)
}

func (p PersonRecord) AgeInMonths() int { return p.age * 12 }

// WithAge returns a modified copy; the receiver is untouched.
func (p PersonRecord) WithAge(age int) (PersonRecord, error) {
	return NewPersonRecord(p.name, age)
}

func (p PersonRecord) String() string {
	return fmt.Sprintf("PersonRecord[name=%s, age=%d]", p.name, p.age)
}

// PersonObject is handled by pointer, so == compares identity, not state.
type PersonObject struct {
	Name string
	Age  int
}

func RecordsDemo(_ context.Context, w io.Writer) error {
	r, err := NewPersonRecord("Alice", 30)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, r)
	fmt.Fprintf(w, "Name accessor: %s\n", r.Name())
	fmt.Fprintf(w, "Age accessor:  %d\n", r.Age())
	fmt.Fprintf(w, "Greeting:      %s\n", r.Greet())

	p := &PersonObject{Name: "Alice", Age: 30}
	fmt.Fprintf(w, "%+v\n", *p)
	fmt.Fprintf(w, "Same name as record: %t\n", r.Name() == p.Name)

	r2, _ := NewPersonRecord("Alice", 30)
	fmt.Fprintf(w, "r equals r2? %t\n", r == r2)

	p2 := &PersonObject{Name: "Alice", Age: 30}
	fmt.Fprintf(w, "p equals p2 (pointers)? %t\n", p == p2)

	if _, err := NewPersonRecord("", -5); err != nil {
		fmt.Fprintf(w, "Validation triggered: %v\n", err)
	}
	return nil
}
