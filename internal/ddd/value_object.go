package ddd

import (
	"errors"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email address")

// EmailAddress is a value object: immutable, validated once, compared by value with ==.
type EmailAddress struct {
	value string
}

func NewEmailAddress(raw string) (EmailAddress, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	at := strings.IndexByte(v, '@')
	if at <= 0 || at == len(v)-1 || strings.Count(v, "@") != 1 {
		return EmailAddress{}, ErrInvalidEmail
	}
	return EmailAddress{value: v}, nil
}

func (e EmailAddress) String() string { return e.value }

func (e EmailAddress) IsZero() bool { return e.value == "" }
