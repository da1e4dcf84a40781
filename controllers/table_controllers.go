package controllers

import (
	"gorm.io/gorm"

	"restaurant-manager/models"
	"restaurant-manager/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// Create -> add a new table, always starting out Available
func (tc *TableController) Create(number, capacity int) (models.Table, error) {
	table := models.Table{
		TableNumber: number,
		Capacity:    capacity,
		Status:      models.TableAvailable,
	}
	if err := tc.DB.Create(&table).Error; err != nil {
		return models.Table{}, err
	}
	utils.InfoLogger.Printf("New table created: #%d (capacity=%d)", table.TableNumber, table.Capacity)
	return table, nil
}

func (tc *TableController) GetAll() ([]models.Table, error) {
	var tables []models.Table
	if err := tc.DB.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (tc *TableController) GetByID(tableID uint) (models.Table, error) {
	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		return models.Table{}, err
	}
	return table, nil
}

func (tc *TableController) FindByStatus(status models.TableStatus) ([]models.Table, error) {
	var tables []models.Table
	if err := tc.DB.Where("status = ?", status).Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// Update -> administrative whole-row rewrite; the only path that can
// assign Booked or Reserved
func (tc *TableController) Update(tableID uint, number, capacity int, status string) (models.Table, error) {
	parsed, err := models.ParseTableStatus(status)
	if err != nil {
		return models.Table{}, err
	}

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		return models.Table{}, err
	}

	table.TableNumber = number
	table.Capacity = capacity
	table.Status = parsed
	if err := tc.DB.Save(&table).Error; err != nil {
		return models.Table{}, err
	}
	utils.InfoLogger.Printf("Table %d updated (status=%s)", table.ID, table.Status)
	return table, nil
}

// Delete -> unconditional, a no-op when the row is already gone
func (tc *TableController) Delete(tableID uint) error {
	if err := tc.DB.Delete(&models.Table{}, tableID).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Table %d deleted", tableID)
	return nil
}

// ReserveForOrder flips an Available table to Occupied on the caller's
// handle, so order creation can run it inside its own transaction.
// Fails with gorm.ErrRecordNotFound when the table is absent and with
// ErrTableNotAvailable for any status other than Available.
func (tc *TableController) ReserveForOrder(tx *gorm.DB, tableID uint) (models.Table, error) {
	var table models.Table
	if err := tx.First(&table, tableID).Error; err != nil {
		return models.Table{}, err
	}
	if table.Status != models.TableAvailable {
		return models.Table{}, ErrTableNotAvailable
	}
	table.Status = models.TableOccupied
	if err := tx.Save(&table).Error; err != nil {
		return models.Table{}, err
	}
	return table, nil
}

// Release puts a table back to Available. No workflow calls this today;
// completing an order deliberately leaves the table Occupied.
func (tc *TableController) Release(tx *gorm.DB, tableID uint) (models.Table, error) {
	var table models.Table
	if err := tx.First(&table, tableID).Error; err != nil {
		return models.Table{}, err
	}
	table.Status = models.TableAvailable
	if err := tx.Save(&table).Error; err != nil {
		return models.Table{}, err
	}
	return table, nil
}
