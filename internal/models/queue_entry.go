package models

import "time"

// QueueEntry places a customer in a barbershop's walk-in queue.
type QueueEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"size:36;index;not null" json:"userId"`
	BarbershopID uint      `gorm:"index;not null" json:"barberShopId"`
	Position     int       `json:"position"`
	CreatedAt    time.Time `json:"createdAt"`
}
