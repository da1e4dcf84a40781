package models

import "time"

type OrderStatus string

const (
	OrderPlaced    OrderStatus = "Placed"
	OrderPreparing OrderStatus = "Preparing"
	OrderServed    OrderStatus = "Served"
	OrderCompleted OrderStatus = "Completed"
)

// TableID is a plain reference, not a migrated constraint. Deleting a
// table leaves its orders in place with a dangling id.
type Order struct {
	ID        uint        `gorm:"primaryKey"`
	TableID   uint        `gorm:"not null;index"`
	WaiterID  uint        `gorm:"not null"`
	OrderTime time.Time   `gorm:"not null"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;default:'Placed'"`
	CreatedAt time.Time   `gorm:"not null"`
	UpdatedAt time.Time   `gorm:"not null"`
}

// ParseOrderStatus accepts any of the four lifecycle values. No ordering
// between them is enforced; an order may move backward.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderPlaced, OrderPreparing, OrderServed, OrderCompleted:
		return OrderStatus(s), nil
	}
	return "", &InvalidEnumError{
		Field:   "order status",
		Value:   s,
		Allowed: []string{"Placed", "Preparing", "Served", "Completed"},
	}
}
