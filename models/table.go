package models

import "time"

type TableStatus string

const (
	TableAvailable TableStatus = "Available"
	TableOccupied  TableStatus = "Occupied"
	TableBooked    TableStatus = "Booked"
	TableReserved  TableStatus = "Reserved"
)

// Booked and Reserved are never assigned by the order or booking flows;
// they are reachable only through the administrative table update.
type Table struct {
	ID          uint        `gorm:"primaryKey"`
	TableNumber int         `gorm:"not null"`
	Capacity    int         `gorm:"not null"`
	Status      TableStatus `gorm:"type:varchar(20);not null;default:'Available'"`
	CreatedAt   time.Time   `gorm:"not null"`
	UpdatedAt   time.Time   `gorm:"not null"`
}

func ParseTableStatus(s string) (TableStatus, error) {
	switch TableStatus(s) {
	case TableAvailable, TableOccupied, TableBooked, TableReserved:
		return TableStatus(s), nil
	}
	return "", &InvalidEnumError{
		Field:   "table status",
		Value:   s,
		Allowed: []string{"Available", "Occupied", "Booked", "Reserved"},
	}
}
