package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-accounts/internal/audit"
	"github.com/BruksfildServices01/barber-accounts/internal/auth"
	domain "github.com/BruksfildServices01/barber-accounts/internal/domain/account"
	"github.com/BruksfildServices01/barber-accounts/internal/logger"
	"github.com/BruksfildServices01/barber-accounts/internal/models"
)

const (
	confirmationSubject = "Register confirmation - Barbershop"

	// MailTimeout bounds the confirmation send. It stays below the server
	// shutdown deadline so in-flight registrations finish first.
	MailTimeout = 8 * time.Second
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Type     string
}

// ======================================================
// USE CASE
// ======================================================

// Register creates an unverified account and mails its confirmation code.
// Delivery is best effort: a failed send is logged and audited but the
// account is kept and returned.
type Register struct {
	repo        domain.Repository
	hasher      *auth.PasswordHasher
	mailer      domain.Mailer
	audit       *audit.Dispatcher
	log         logrus.FieldLogger
	now         func() time.Time
	emailDomain func(email string) bool
}

func NewRegister(
	repo domain.Repository,
	hasher *auth.PasswordHasher,
	mailer domain.Mailer,
	audit *audit.Dispatcher,
	log logrus.FieldLogger,
	now func() time.Time,
) *Register {
	return &Register{
		repo:   repo,
		hasher: hasher,
		mailer: mailer,
		audit:  audit,
		log:    log,
		now:    now,
	}
}

// WithEmailDomainCheck rejects registrations whose email domain fails check.
func (uc *Register) WithEmailDomainCheck(check func(email string) bool) *Register {
	uc.emailDomain = check
	return uc
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := normalizeEmail(in.Email)

	if uc.emailDomain != nil && !uc.emailDomain(email) {
		return nil, domain.ErrInvalidEmail
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	code, err := domain.NewConfirmationCode()
	if err != nil {
		return nil, fmt.Errorf("generate confirmation code: %w", err)
	}

	userType := in.Type
	if userType == "" {
		userType = models.UserTypeCustomer
	}

	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Type:         userType,
	}
	domain.StartConfirmation(u, code, uc.now())

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.AccountEvent(u.ID, audit.ActionRegistered, map[string]string{"type": u.Type}))

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), MailTimeout)
	defer cancel()
	if err := uc.mailer.Send(sendCtx, u.Email, confirmationSubject, confirmationBody(u.Name, code)); err != nil {
		logger.LogError(uc.log, "confirmation email not delivered", err, logrus.Fields{"user_id": u.ID})
		uc.audit.Dispatch(audit.AccountEvent(u.ID, audit.ActionEmailFailed, nil))
	}

	return u, nil
}

func confirmationBody(name, code string) string {
	greeting := "Hi"
	if name != "" {
		greeting += ", " + name
	}
	return fmt.Sprintf(
		"%s.\n\nYour confirmation code is %s and expires in %d hours.\n",
		greeting, code, int(domain.ConfirmationTTL.Hours()),
	)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
