package account

import (
	"net/http"

	"github.com/BruksfildServices01/barber-accounts/internal/httperr"
)

var (
	ErrNotFound          = httperr.ErrBusiness("user_not_found")
	ErrInvalidCredential = httperr.ErrBusiness("invalid_password")
	ErrEmailTaken        = httperr.ErrBusiness("email_already_registered")
	ErrAlreadyVerified   = httperr.ErrBusiness("account_already_verified")
	ErrInvalidCode       = httperr.ErrBusiness("invalid_confirmation_code")
	ErrCodeExpired       = httperr.ErrBusiness("confirmation_code_expired")
	ErrInvalidEmail      = httperr.ErrBusiness("invalid_email_domain")
	ErrInvalidImage      = httperr.ErrBusiness("invalid_image")
)

// Errors maps every account business code to its HTTP rendering.
var Errors = map[string]httperr.Mapping{
	"user_not_found":            {Status: http.StatusBadRequest, Message: "User not found"},
	"invalid_password":          {Status: http.StatusBadRequest, Message: "Invalid password"},
	"email_already_registered":  {Status: http.StatusBadRequest, Message: "Email already registered"},
	"account_already_verified":  {Status: http.StatusBadRequest, Message: "Account already verified"},
	"invalid_confirmation_code": {Status: http.StatusBadRequest, Message: "Invalid confirmation code"},
	"confirmation_code_expired": {Status: http.StatusBadRequest, Message: "Confirmation code expired"},
	"invalid_email_domain":      {Status: http.StatusBadRequest, Message: "Email domain does not accept mail"},
	"invalid_image":             {Status: http.StatusBadRequest, Message: "Unsupported or corrupt image"},
}
