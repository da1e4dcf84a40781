package controllers

import (
	"time"

	"gorm.io/gorm"

	"restaurant-manager/models"
	"restaurant-manager/utils"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// Record writes a Successful payment against a bill. The amount is not
// checked against the bill's final amount and the bill's payment status
// is not touched; settling a bill remains a manual bill update.
func (pc *PaymentController) Record(billID uint, method string, amountPaid float64) (models.Payment, error) {
	parsed, err := models.ParsePaymentMethod(method)
	if err != nil {
		return models.Payment{}, err
	}

	payment := models.Payment{
		BillID:      billID,
		Method:      parsed,
		AmountPaid:  amountPaid,
		PaymentTime: time.Now(),
		Status:      models.PaymentSuccessful,
	}
	if err := pc.DB.Create(&payment).Error; err != nil {
		return models.Payment{}, err
	}
	utils.InfoLogger.Printf("Payment %d recorded for bill %d (%s, %.2f)", payment.ID, billID, parsed, amountPaid)
	return payment, nil
}

func (pc *PaymentController) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	if err := pc.DB.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// GetByBillID returns the single payment for a bill, assuming at most
// one meaningfully exists.
func (pc *PaymentController) GetByBillID(billID uint) (models.Payment, error) {
	var payment models.Payment
	if err := pc.DB.Where("bill_id = ?", billID).First(&payment).Error; err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}
