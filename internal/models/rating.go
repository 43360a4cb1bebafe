package models

import "time"

type Rating struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"size:36;index;not null" json:"userId"`
	BarbershopID uint      `gorm:"index;not null" json:"barberShopId"`
	Score        int       `gorm:"not null" json:"score"`
	Comment      string    `gorm:"size:500" json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}
