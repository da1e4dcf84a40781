package models

import "time"

type BillStatus string

const (
	BillUnpaid BillStatus = "Unpaid"
	BillPaid   BillStatus = "Paid"
)

// Bill is a derived settlement record for one order. FinalAmount is
// recomputed from the three inputs on every write and may be negative.
type Bill struct {
	ID            uint       `gorm:"primaryKey"`
	OrderID       uint       `gorm:"not null;index"`
	TotalAmount   float64    `gorm:"type:decimal(10,2);not null"`
	Discount      float64    `gorm:"type:decimal(10,2);not null;default:0.00"`
	Tax           float64    `gorm:"type:decimal(10,2);not null;default:0.00"`
	FinalAmount   float64    `gorm:"type:decimal(10,2);not null"`
	PaymentStatus BillStatus `gorm:"type:varchar(20);not null;default:'Unpaid'"`
	GeneratedAt   time.Time  `gorm:"not null"`
}

func ParseBillStatus(s string) (BillStatus, error) {
	switch BillStatus(s) {
	case BillUnpaid, BillPaid:
		return BillStatus(s), nil
	}
	return "", &InvalidEnumError{
		Field:   "bill payment status",
		Value:   s,
		Allowed: []string{"Unpaid", "Paid"},
	}
}
