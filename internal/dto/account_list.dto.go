package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-accounts/internal/models"
)

// AccountListDTO is the listing view of an account. Confirmation state other
// than the verified flag stays private to its owner.
type AccountListDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Type       string    `json:"type"`
	AvatarURL  string    `json:"avatarUrl,omitempty"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewAccountList(users []models.User) []AccountListDTO {
	out := make([]AccountListDTO, 0, len(users))
	for _, u := range users {
		out = append(out, AccountListDTO{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Phone:      u.Phone,
			Type:       u.Type,
			AvatarURL:  u.AvatarURL,
			IsVerified: u.IsVerified,
			CreatedAt:  u.CreatedAt,
		})
	}
	return out
}
