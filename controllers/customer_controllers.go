package controllers

import (
	"gorm.io/gorm"

	"restaurant-manager/models"
	"restaurant-manager/utils"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

func (cc *CustomerController) Create(name, phone, email string) (models.Customer, error) {
	customer := models.Customer{
		Name:   name,
		Phone:  phone,
		Email:  email,
		Active: true,
	}
	if err := cc.DB.Create(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	utils.InfoLogger.Printf("New customer created: %s (ID=%d)", customer.Name, customer.ID)
	return customer, nil
}

func (cc *CustomerController) GetByID(customerID uint) (models.Customer, error) {
	var customer models.Customer
	if err := cc.DB.First(&customer, customerID).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (cc *CustomerController) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := cc.DB.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Update rewrites name, phone and email in one go, keeping the
// whole-row overwrite semantics of the other entities.
func (cc *CustomerController) Update(customerID uint, name, phone, email string) (models.Customer, error) {
	var customer models.Customer
	if err := cc.DB.First(&customer, customerID).Error; err != nil {
		return models.Customer{}, err
	}

	customer.Name = name
	customer.Phone = phone
	customer.Email = email
	if err := cc.DB.Save(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	utils.InfoLogger.Printf("Customer %d updated", customer.ID)
	return customer, nil
}

func (cc *CustomerController) Delete(customerID uint) error {
	if err := cc.DB.Delete(&models.Customer{}, customerID).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Customer %d deleted", customerID)
	return nil
}
