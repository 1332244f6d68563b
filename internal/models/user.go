package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	Base
	Name           string    `gorm:"type:varchar(50);not null;index:ix_users_name" json:"name"`
	Email          string    `gorm:"type:varchar(150);not null;uniqueIndex:ix_users_email" json:"email"`
	HashedPassword string    `gorm:"not null" json:"-"`
	UserUUID       uuid.UUID `gorm:"type:uuid;not null" json:"user_uuid"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	// Stored in verified_at, which holds a flag rather than a timestamp.
	IsVerified bool  `gorm:"column:verified_at;not null;default:false" json:"verified"`
	IsAdmin    *bool `json:"is_admin,omitempty"`

	RefreshTokens []RefreshToken `json:"-"`
	Orders        []Order        `json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.UserUUID == uuid.Nil {
		u.UserUUID = uuid.New()
	}
	return nil
}

func (u *User) Role() string {
	if u.IsAdmin != nil && *u.IsAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}
