package account

import (
	"context"

	"github.com/BruksfildServices01/barber-accounts/internal/audit"
	domain "github.com/BruksfildServices01/barber-accounts/internal/domain/account"
)

type DeleteAccount struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAccount(repo domain.Repository, audit *audit.Dispatcher) *DeleteAccount {
	return &DeleteAccount{repo: repo, audit: audit}
}

func (uc *DeleteAccount) Execute(ctx context.Context, accountID string) error {
	if err := uc.repo.Delete(ctx, accountID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.AccountEvent(accountID, audit.ActionDeleted, nil))
	return nil
}
