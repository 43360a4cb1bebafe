package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AccountID *string `gorm:"size:36;index" json:"accountId"`
	Action    string  `gorm:"size:50;not null" json:"action"`
	Entity    string  `gorm:"size:50" json:"entity"`
	Metadata  string  `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"createdAt"`
}
