package account

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-accounts/internal/audit"
	"github.com/BruksfildServices01/barber-accounts/internal/auth"
	domain "github.com/BruksfildServices01/barber-accounts/internal/domain/account"
	"github.com/BruksfildServices01/barber-accounts/internal/models"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login issues a session token. Unverified accounts may log in.
type Login struct {
	repo   domain.Repository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
	audit  *audit.Dispatcher
}

func NewLogin(
	repo domain.Repository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	audit *audit.Dispatcher,
) *Login {
	return &Login{repo: repo, hasher: hasher, tokens: tokens, audit: audit}
}

func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	u, err := uc.repo.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}

	if !uc.hasher.Compare(u.PasswordHash, in.Password) {
		return nil, domain.ErrInvalidCredential
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	uc.audit.Dispatch(audit.AccountEvent(u.ID, audit.ActionLogin, nil))

	return &LoginOutput{Token: token, User: u}, nil
}
