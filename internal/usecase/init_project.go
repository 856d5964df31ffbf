package usecase

import (
	"fmt"
	"strings"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/ports"
)

type InitProject struct {
	initializer ports.ProjectInitializer
}

func NewInitProject(initializer ports.ProjectInitializer) *InitProject {
	return &InitProject{initializer: initializer}
}

func (uc *InitProject) Execute(root string, force bool) error {
	if strings.TrimSpace(root) == "" {
		return &domain.OpError{
			Op:   "usecase.init_project",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("root is empty: %w", domain.ErrInvalidArgument),
		}
	}
	return uc.initializer.Init(root, force)
}
