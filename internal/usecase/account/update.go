package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barber-accounts/internal/audit"
	"github.com/BruksfildServices01/barber-accounts/internal/auth"
	domain "github.com/BruksfildServices01/barber-accounts/internal/domain/account"
	"github.com/BruksfildServices01/barber-accounts/internal/models"
)

// UpdateInput carries the fields to change; nil means keep.
type UpdateInput struct {
	AccountID string
	Name      *string
	Phone     *string
	Password  *string
}

// UpdateAccount changes the caller's own row in place. Email and type are
// fixed at registration.
type UpdateAccount struct {
	repo   domain.Repository
	hasher *auth.PasswordHasher
	audit  *audit.Dispatcher
}

func NewUpdateAccount(
	repo domain.Repository,
	hasher *auth.PasswordHasher,
	audit *audit.Dispatcher,
) *UpdateAccount {
	return &UpdateAccount{repo: repo, hasher: hasher, audit: audit}
}

func (uc *UpdateAccount) Execute(ctx context.Context, in UpdateInput) (*models.User, error) {
	u, err := uc.repo.FindByID(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}

	var changed []string
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
		changed = append(changed, "name")
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
		changed = append(changed, "phone")
	}
	if in.Password != nil {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
		changed = append(changed, "password")
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.AccountEvent(u.ID, audit.ActionUpdated, map[string]any{"fields": changed}))
	return u, nil
}
