package controllers

import (
	"time"

	"gorm.io/gorm"

	"restaurant-manager/models"
	"restaurant-manager/utils"
)

type BillController struct {
	DB *gorm.DB
}

func NewBillController(db *gorm.DB) *BillController {
	return &BillController{DB: db}
}

// Generate derives a bill from the three inputs. The final amount is
// not clamped; a discount larger than total plus tax yields a negative
// bill and that is stored as-is. Nothing checks that the order exists
// or that it is unbilled, so duplicate bills per order are possible.
func (bc *BillController) Generate(orderID uint, total, discount, tax float64) (models.Bill, error) {
	bill := models.Bill{
		OrderID:       orderID,
		TotalAmount:   total,
		Discount:      discount,
		Tax:           tax,
		FinalAmount:   total - discount + tax,
		PaymentStatus: models.BillUnpaid,
		GeneratedAt:   time.Now(),
	}
	if err := bc.DB.Create(&bill).Error; err != nil {
		return models.Bill{}, err
	}
	utils.InfoLogger.Printf("Bill %d generated for order %d (final=%.2f)", bill.ID, bill.OrderID, bill.FinalAmount)
	return bill, nil
}

// Update overwrites the three inputs and recomputes the final amount
// with the same formula.
func (bc *BillController) Update(billID uint, total, discount, tax float64) (models.Bill, error) {
	var bill models.Bill
	if err := bc.DB.First(&bill, billID).Error; err != nil {
		return models.Bill{}, err
	}

	bill.TotalAmount = total
	bill.Discount = discount
	bill.Tax = tax
	bill.FinalAmount = total - discount + tax
	if err := bc.DB.Save(&bill).Error; err != nil {
		return models.Bill{}, err
	}
	utils.InfoLogger.Printf("Bill %d updated (final=%.2f)", bill.ID, bill.FinalAmount)
	return bill, nil
}

func (bc *BillController) GetUnpaid() ([]models.Bill, error) {
	var bills []models.Bill
	if err := bc.DB.Where("payment_status = ?", models.BillUnpaid).Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (bc *BillController) GetByID(billID uint) (models.Bill, error) {
	var bill models.Bill
	if err := bc.DB.First(&bill, billID).Error; err != nil {
		return models.Bill{}, err
	}
	return bill, nil
}

// GetByOrderID returns gorm.ErrRecordNotFound when no bill exists for
// the order; callers treat that as a normal empty result.
func (bc *BillController) GetByOrderID(orderID uint) (models.Bill, error) {
	var bill models.Bill
	if err := bc.DB.Where("order_id = ?", orderID).First(&bill).Error; err != nil {
		return models.Bill{}, err
	}
	return bill, nil
}

func (bc *BillController) Delete(billID uint) error {
	if err := bc.DB.Delete(&models.Bill{}, billID).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Bill %d deleted", billID)
	return nil
}
