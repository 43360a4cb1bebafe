package account

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/BruksfildServices01/barber-accounts/internal/models"
)

const (
	ConfirmationTTL = 2 * time.Hour

	codeMin = 100000
	codeMax = 999999
)

var codeSpan = big.NewInt(codeMax - codeMin + 1)

// NewConfirmationCode returns a uniformly random six digit code in
// [100000, 999999].
func NewConfirmationCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpan)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}

// StartConfirmation puts u in the pending state.
func StartConfirmation(u *models.User, code string, now time.Time) {
	expires := now.Add(ConfirmationTTL)
	u.IsVerified = false
	u.ConfirmationCode = &code
	u.ConfirmationExpiresAt = &expires
}

// canConfirm checks a submitted code against u without mutating it.
func canConfirm(u *models.User, code string, now time.Time) error {
	if u.IsVerified {
		return ErrAlreadyVerified
	}
	if u.ConfirmationCode == nil || *u.ConfirmationCode != code {
		return ErrInvalidCode
	}
	if u.ConfirmationExpiresAt != nil && now.After(*u.ConfirmationExpiresAt) {
		return ErrCodeExpired
	}
	return nil
}

// Confirm verifies u and clears the code so it can never be reused.
func Confirm(u *models.User, code string, now time.Time) error {
	if err := canConfirm(u, code, now); err != nil {
		return err
	}
	u.IsVerified = true
	u.ConfirmationCode = nil
	u.ConfirmationExpiresAt = nil
	return nil
}
