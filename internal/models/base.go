package models

import "time"

// Base holds the columns every table carries.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	Notes     *string   `json:"notes,omitempty"`
}
