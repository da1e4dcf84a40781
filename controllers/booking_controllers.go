package controllers

import (
	"time"

	"gorm.io/gorm"

	"restaurant-manager/models"
	"restaurant-manager/utils"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// Create confirms a booking for a customer and table. There is no
// overlap check against other bookings and the table's status is left
// alone; bookings live outside the live order flow.
func (bkc *BookingController) Create(customerID, tableID uint, date, bookTime string) (models.TableBooking, error) {
	bookingDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return models.TableBooking{}, &CustomError{"booking date must be in YYYY-MM-DD format"}
	}
	if _, err := time.Parse("15:04:05", bookTime); err != nil {
		return models.TableBooking{}, &CustomError{"booking time must be in HH:MM:SS format"}
	}

	booking := models.TableBooking{
		CustomerID:  customerID,
		TableID:     tableID,
		BookingDate: bookingDate,
		BookingTime: bookTime,
		Status:      models.BookingConfirmed,
	}
	if err := bkc.DB.Create(&booking).Error; err != nil {
		return models.TableBooking{}, err
	}
	utils.InfoLogger.Printf("Booking %d confirmed for customer %d at table %d", booking.ID, customerID, tableID)
	return booking, nil
}

func (bkc *BookingController) GetAll() ([]models.TableBooking, error) {
	var bookings []models.TableBooking
	if err := bkc.DB.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus follows the same contract as the order one: parse first,
// leave the row untouched on a bad value.
func (bkc *BookingController) UpdateStatus(bookingID uint, status string) (models.TableBooking, error) {
	parsed, err := models.ParseBookingStatus(status)
	if err != nil {
		return models.TableBooking{}, err
	}

	var booking models.TableBooking
	if err := bkc.DB.First(&booking, bookingID).Error; err != nil {
		return models.TableBooking{}, err
	}

	booking.Status = parsed
	if err := bkc.DB.Save(&booking).Error; err != nil {
		return models.TableBooking{}, err
	}
	utils.InfoLogger.Printf("Booking %d status changed to %s", booking.ID, booking.Status)
	return booking, nil
}

func (bkc *BookingController) Delete(bookingID uint) error {
	if err := bkc.DB.Delete(&models.TableBooking{}, bookingID).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Booking %d deleted", bookingID)
	return nil
}
