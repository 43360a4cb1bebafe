package account

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-accounts/internal/audit"
	domain "github.com/BruksfildServices01/barber-accounts/internal/domain/account"
)

type ConfirmAccount struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewConfirmAccount(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now func() time.Time,
) *ConfirmAccount {
	return &ConfirmAccount{repo: repo, audit: audit, now: now}
}

func (uc *ConfirmAccount) Execute(ctx context.Context, accountID, code string) error {
	u, err := uc.repo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	if err := domain.Confirm(u, code, uc.now()); err != nil {
		return err
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.AccountEvent(u.ID, audit.ActionVerified, nil))
	return nil
}
