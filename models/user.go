package models

import "time"

type UserRole string

const (
	RoleManager      UserRole = "Manager"
	RoleWaiter       UserRole = "Waiter"
	RoleKitchenStaff UserRole = "KitchenStaff"
)

type User struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"type:varchar(100);unique;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(20)"`
	Role      UserRole  `gorm:"type:varchar(20);not null"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
}

func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleManager, RoleWaiter, RoleKitchenStaff:
		return UserRole(s), nil
	}
	return "", &InvalidEnumError{
		Field:   "user role",
		Value:   s,
		Allowed: []string{"Manager", "Waiter", "KitchenStaff"},
	}
}
