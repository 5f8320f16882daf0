package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"unique;not null"`
	Password  string         `json:"-" gorm:"not null"` // bcrypt hash
	Role      string         `json:"role" gorm:"default:'student'"` // student, owner
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleOwner   UserRole = "owner"
)

func (r UserRole) Valid() bool {
	return r == RoleStudent || r == RoleOwner
}
