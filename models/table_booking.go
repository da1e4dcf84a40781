package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

// TableBooking is a reservation record independent of the live order
// flow. It references a table but never alters the table's status.
type TableBooking struct {
	ID          uint          `gorm:"primaryKey"`
	CustomerID  uint          `gorm:"not null;index"`
	TableID     uint          `gorm:"not null;index"`
	BookingDate time.Time     `gorm:"type:date;not null"`
	BookingTime string        `gorm:"type:varchar(8);not null"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'Confirmed'"`
	CreatedAt   time.Time     `gorm:"not null"`
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingConfirmed, BookingCancelled, BookingCompleted:
		return BookingStatus(s), nil
	}
	return "", &InvalidEnumError{
		Field:   "booking status",
		Value:   s,
		Allowed: []string{"Confirmed", "Cancelled", "Completed"},
	}
}
