package models

import "time"

type Profile struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	Bio       string     `gorm:"size:500" json:"bio"`
	BirthDate *time.Time `json:"birthDate"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
