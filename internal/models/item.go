package models

import (
	"time"

	"gorm.io/gorm"
)

type Item struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CanteenID uint           `json:"canteen_id" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"not null"`
	Price     float64        `json:"price" gorm:"not null"`
	Category  string         `json:"category" gorm:"not null"`
	Image     string         `json:"image" gorm:"not null"`
	Available bool           `json:"available" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
