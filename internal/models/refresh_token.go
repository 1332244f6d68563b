package models

import "time"

type RefreshToken struct {
	Base
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	RefreshKey string    `gorm:"not null" json:"-"`
	ExpiresAt  time.Time `gorm:"not null" json:"expires_at"`
	User       *User     `json:"user,omitempty"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
