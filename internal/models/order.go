package models

import "time"

type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"user_id" gorm:"not null;index"`
	CanteenID     uint          `json:"canteen_id" gorm:"not null;index"`
	Items         []OrderLine   `json:"items" gorm:"foreignKey:OrderID"`
	TotalPrice    float64       `json:"total_price" gorm:"not null"`
	Token         int           `json:"token" gorm:"not null"` // daily queue position within the canteen
	OrderStatus   OrderStatus   `json:"order_status" gorm:"type:varchar(20);default:'Preparing'"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:'Pending'"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// OrderLine snapshots an item at placement time. Name, price and image
// come from the catalog record, never from client input; ItemID is kept
// for audit only.
type OrderLine struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ItemID    uint    `json:"item_id"`
	Name      string  `json:"name" gorm:"not null"`
	UnitPrice float64 `json:"price" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Image     string  `json:"image"`
}

type OrderStatus string

const (
	OrderPreparing OrderStatus = "Preparing"
	OrderReady     OrderStatus = "Ready"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further status change is permitted.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanTransitionTo encodes the fulfillment state machine:
// Preparing -> Ready | Cancelled, Ready -> Completed | Cancelled.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPreparing:
		return next == OrderReady || next == OrderCancelled
	case OrderReady:
		return next == OrderCompleted || next == OrderCancelled
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}
