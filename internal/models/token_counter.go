package models

// TokenCounter is the per-(canteen, day) order token sequence. Tokens
// are allocated by an atomic upsert-increment on this record so that
// concurrent placements against the same canteen never observe the
// same value.
type TokenCounter struct {
	CanteenID uint   `json:"canteen_id" gorm:"primaryKey;autoIncrement:false"`
	Day       string `json:"day" gorm:"primaryKey;size:10"` // "YYYY-MM-DD"
	Value     int    `json:"value" gorm:"not null"`
}
