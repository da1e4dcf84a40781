package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"restaurant-manager/controllers"
	"restaurant-manager/models"
	"restaurant-manager/utils"
)

func setupTestDBForOrders(t *testing.T) *gorm.DB {
	utils.InitLogger()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Table{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestCreateOrderOccupiesTable(t *testing.T) {
	db := setupTestDBForOrders(t)
	oc := controllers.NewOrderController(db)

	table := models.Table{TableNumber: 1, Capacity: 4, Status: models.TableAvailable}
	db.Create(&table)

	order, err := oc.Create(table.ID, 2)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderPlaced, order.Status)
	assert.Equal(t, table.ID, order.TableID)
	assert.Equal(t, uint(2), order.WaiterID)
	assert.False(t, order.OrderTime.IsZero())

	var storedTable models.Table
	db.First(&storedTable, table.ID)
	assert.Equal(t, models.TableOccupied, storedTable.Status)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateOrderTableNotAvailable(t *testing.T) {
	db := setupTestDBForOrders(t)
	oc := controllers.NewOrderController(db)

	table := models.Table{TableNumber: 3, Capacity: 4, Status: models.TableOccupied}
	db.Create(&table)

	_, err := oc.Create(table.ID, 2)
	assert.ErrorIs(t, err, controllers.ErrTableNotAvailable)

	// Both effects absent together: no order row, table untouched.
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)

	var storedTable models.Table
	db.First(&storedTable, table.ID)
	assert.Equal(t, models.TableOccupied, storedTable.Status)
}

func TestCreateOrderTableMissing(t *testing.T) {
	db := setupTestDBForOrders(t)
	oc := controllers.NewOrderController(db)

	_, err := oc.Create(42, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateOrderStatusInvalidLeavesRow(t *testing.T) {
	db := setupTestDBForOrders(t)
	oc := controllers.NewOrderController(db)

	order := models.Order{TableID: 1, WaiterID: 2, Status: models.OrderPlaced}
	db.Create(&order)

	_, err := oc.UpdateStatus(order.ID, "Burnt")
	var enumErr *models.InvalidEnumError
	assert.ErrorAs(t, err, &enumErr)

	var stored models.Order
	db.First(&stored, order.ID)
	assert.Equal(t, models.OrderPlaced, stored.Status)
}

func TestUpdateOrderStatusBackwardAllowed(t *testing.T) {
	db := setupTestDBForOrders(t)
	oc := controllers.NewOrderController(db)

	order := models.Order{TableID: 1, WaiterID: 2, Status: models.OrderCompleted}
	db.Create(&order)

	updated, err := oc.UpdateStatus(order.ID, "Placed")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderPlaced, updated.Status)
}

func TestUpdateOrderStatusMissing(t *testing.T) {
	db := setupTestDBForOrders(t)
	oc := controllers.NewOrderController(db)

	_, err := oc.UpdateStatus(42, "Served")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// Deleting a table never touches the orders placed on it; with
// enforcement on, the schema must not carry a constraint that would
// block the delete.
func TestDeleteTableLeavesOrdersDangling(t *testing.T) {
	db := setupTestDBForOrders(t)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable enforcement: %v", err)
	}
	oc := controllers.NewOrderController(db)
	tc := controllers.NewTableController(db)

	table := models.Table{TableNumber: 1, Capacity: 4, Status: models.TableAvailable}
	db.Create(&table)

	order, err := oc.Create(table.ID, 2)
	assert.NoError(t, err)

	assert.NoError(t, tc.Delete(table.ID))

	var stored models.Order
	assert.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, table.ID, stored.TableID)

	_, err = tc.GetByID(table.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteOrderKeepsTableOccupied(t *testing.T) {
	db := setupTestDBForOrders(t)
	oc := controllers.NewOrderController(db)

	table := models.Table{TableNumber: 1, Capacity: 4, Status: models.TableAvailable}
	db.Create(&table)

	order, err := oc.Create(table.ID, 2)
	assert.NoError(t, err)

	assert.NoError(t, oc.Delete(order.ID))

	var storedTable models.Table
	db.First(&storedTable, table.ID)
	assert.Equal(t, models.TableOccupied, storedTable.Status)

	// Deleting the same id again is a no-op.
	assert.NoError(t, oc.Delete(order.ID))
}
