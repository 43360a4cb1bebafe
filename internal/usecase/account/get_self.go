package account

import "github.com/BruksfildServices01/barber-accounts/internal/auth"

type Self struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

// GetSelf answers from the verified token alone, without a store lookup.
type GetSelf struct{}

func NewGetSelf() *GetSelf {
	return &GetSelf{}
}

func (uc *GetSelf) Execute(claims *auth.Claims) Self {
	return Self{ID: claims.ID, Email: claims.Email, Type: claims.Type}
}
