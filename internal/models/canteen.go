package models

import (
	"time"

	"gorm.io/gorm"
)

const DefaultCanteenImage = "https://images.unsplash.com/photo-1552566626-52f8b828add9?q=80&w=1000&auto=format&fit=crop"

type Canteen struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	OwnerID     uint           `json:"owner_id" gorm:"uniqueIndex;not null"` // one canteen per owner
	Name        string         `json:"name" gorm:"not null"`
	Place       string         `json:"place" gorm:"not null"`
	OpeningTime string         `json:"opening_time" gorm:"not null"` // wall clock "HH:MM"
	ClosingTime string         `json:"closing_time" gorm:"not null"`
	Image       string         `json:"image"`
	Rating      float64        `json:"rating" gorm:"default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// IsOpenAt reports whether t falls inside the canteen's opening window,
// comparing wall-clock minutes within the same day. Malformed times
// count as closed.
func (c *Canteen) IsOpenAt(t time.Time) bool {
	open, err := time.Parse("15:04", c.OpeningTime)
	if err != nil {
		return false
	}
	closing, err := time.Parse("15:04", c.ClosingTime)
	if err != nil {
		return false
	}

	minutes := t.Hour()*60 + t.Minute()
	openMin := open.Hour()*60 + open.Minute()
	closeMin := closing.Hour()*60 + closing.Minute()

	return minutes >= openMin && minutes <= closeMin
}
