package models

import "time"

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCard   PaymentMethod = "Card"
	PaymentUPI    PaymentMethod = "UPI"
	PaymentWallet PaymentMethod = "Wallet"
)

type PaymentStatus string

const (
	PaymentSuccessful PaymentStatus = "Successful"
	PaymentFailed     PaymentStatus = "Failed"
)

type Payment struct {
	ID          uint          `gorm:"primaryKey"`
	BillID      uint          `gorm:"not null;index"`
	Method      PaymentMethod `gorm:"type:varchar(20);not null"`
	AmountPaid  float64       `gorm:"type:decimal(10,2);not null"`
	PaymentTime time.Time     `gorm:"not null"`
	Status      PaymentStatus `gorm:"type:varchar(20);not null"`
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentWallet:
		return PaymentMethod(s), nil
	}
	return "", &InvalidEnumError{
		Field:   "payment method",
		Value:   s,
		Allowed: []string{"Cash", "Card", "UPI", "Wallet"},
	}
}
