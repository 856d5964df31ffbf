package tui

import "github.com/neolcr/patterns/internal/domain"

type demoDoneMsg struct {
	report domain.DemoReport
	id     string
	err    error
}
