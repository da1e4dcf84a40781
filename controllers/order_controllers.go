package controllers

import (
	"time"

	"gorm.io/gorm"

	"restaurant-manager/models"
	"restaurant-manager/utils"
)

type OrderController struct {
	DB     *gorm.DB
	Tables *TableController
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Tables: NewTableController(db)}
}

// Create places an order on an Available table. The table flip and the
// order insert run in one transaction: either both rows change or
// neither does.
func (oc *OrderController) Create(tableID, waiterID uint) (models.Order, error) {
	tx := oc.DB.Begin()
	if tx.Error != nil {
		return models.Order{}, tx.Error
	}

	table, err := oc.Tables.ReserveForOrder(tx, tableID)
	if err != nil {
		tx.Rollback()
		return models.Order{}, err
	}

	order := models.Order{
		TableID:   table.ID,
		WaiterID:  waiterID,
		OrderTime: time.Now(),
		Status:    models.OrderPlaced,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return models.Order{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return models.Order{}, err
	}
	utils.InfoLogger.Printf("Order %d placed at table %d by waiter %d", order.ID, table.ID, waiterID)
	return order, nil
}

func (oc *OrderController) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := oc.DB.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (oc *OrderController) GetByID(orderID uint) (models.Order, error) {
	var order models.Order
	if err := oc.DB.First(&order, orderID).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateStatus parses before loading, so an unparseable status never
// touches the stored row. Any of the four statuses may follow any other.
func (oc *OrderController) UpdateStatus(orderID uint, status string) (models.Order, error) {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err := oc.DB.First(&order, orderID).Error; err != nil {
		return models.Order{}, err
	}

	order.Status = parsed
	if err := oc.DB.Save(&order).Error; err != nil {
		return models.Order{}, err
	}
	utils.InfoLogger.Printf("Order %d status changed to %s", order.ID, order.Status)
	return order, nil
}

// Delete removes the order row only. The table it occupied stays
// Occupied; releasing it is a separate administrative action.
func (oc *OrderController) Delete(orderID uint) error {
	if err := oc.DB.Delete(&models.Order{}, orderID).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Order %d deleted", orderID)
	return nil
}
