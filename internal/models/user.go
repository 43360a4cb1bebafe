package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UserTypeCustomer = "customer"
	UserTypeOwner    = "owner"
)

// User is the account record. Confirmation fields are nil once the account
// has been verified.
type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name         string `gorm:"size:100" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Type         string `gorm:"size:20;not null;default:'customer'" json:"type"`
	AvatarURL    string `gorm:"size:512" json:"avatarUrl,omitempty"`

	IsVerified            bool       `gorm:"not null;default:false" json:"isVerified"`
	ConfirmationCode      *string    `gorm:"size:6" json:"confirmationCode"`
	ConfirmationExpiresAt *time.Time `json:"confirmationExpiresAt"`

	Profile    *Profile     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"profile,omitempty"`
	Barbershop *Barbershop  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;" json:"barberShop,omitempty"`
	Queue      []QueueEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"queue,omitempty"`
	Ratings    []Rating     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"rating,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
