package usecase

import (
	"context"

	"github.com/neolcr/patterns/internal/domain"
	"github.com/neolcr/patterns/internal/ports"
)

type GetAccount struct {
	repo ports.AccountRepository
}

func NewGetAccount(repo ports.AccountRepository) *GetAccount {
	return &GetAccount{repo: repo}
}

var _ ports.GetAccountUseCase = (*GetAccount)(nil)

func (uc *GetAccount) GetAccount(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	return uc.repo.FindByID(ctx, id)
}
