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

func setupTestDBForBills(t *testing.T) *gorm.DB {
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
	if err := db.AutoMigrate(&models.Bill{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestGenerateBill(t *testing.T) {
	db := setupTestDBForBills(t)
	bc := controllers.NewBillController(db)

	bill, err := bc.Generate(7, 100.0, 10.0, 5.0)
	assert.NoError(t, err)
	assert.Equal(t, 95.0, bill.FinalAmount)
	assert.Equal(t, models.BillUnpaid, bill.PaymentStatus)
	assert.False(t, bill.GeneratedAt.IsZero())
}

func TestGenerateBillNegativeFinalAmount(t *testing.T) {
	db := setupTestDBForBills(t)
	bc := controllers.NewBillController(db)

	// Discount above total plus tax is stored as-is, not clamped.
	bill, err := bc.Generate(1, 20.0, 50.0, 5.0)
	assert.NoError(t, err)
	assert.Equal(t, -25.0, bill.FinalAmount)

	var stored models.Bill
	db.First(&stored, bill.ID)
	assert.Equal(t, -25.0, stored.FinalAmount)
}

func TestGenerateDuplicateBillsPerOrder(t *testing.T) {
	db := setupTestDBForBills(t)
	bc := controllers.NewBillController(db)

	_, err := bc.Generate(3, 100.0, 0, 0)
	assert.NoError(t, err)
	_, err = bc.Generate(3, 40.0, 0, 0)
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Bill{}).Where("order_id = ?", 3).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestUpdateBillRecomputesFinalAmount(t *testing.T) {
	db := setupTestDBForBills(t)
	bc := controllers.NewBillController(db)

	bill, err := bc.Generate(7, 100.0, 10.0, 5.0)
	assert.NoError(t, err)

	updated, err := bc.Update(bill.ID, 200.0, 20.0, 10.0)
	assert.NoError(t, err)
	assert.Equal(t, 190.0, updated.FinalAmount)
	assert.Equal(t, models.BillUnpaid, updated.PaymentStatus)
}

func TestUpdateBillMissing(t *testing.T) {
	db := setupTestDBForBills(t)
	bc := controllers.NewBillController(db)

	_, err := bc.Update(42, 10.0, 0, 0)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetUnpaidFiltersSettledBills(t *testing.T) {
	db := setupTestDBForBills(t)
	bc := controllers.NewBillController(db)

	unpaid, err := bc.Generate(1, 100.0, 0, 0)
	assert.NoError(t, err)
	settled, err := bc.Generate(2, 50.0, 0, 0)
	assert.NoError(t, err)
	db.Model(&models.Bill{}).Where("id = ?", settled.ID).Update("payment_status", models.BillPaid)

	bills, err := bc.GetUnpaid()
	assert.NoError(t, err)
	assert.Len(t, bills, 1)
	assert.Equal(t, unpaid.ID, bills[0].ID)
}

func TestGetBillByID(t *testing.T) {
	db := setupTestDBForBills(t)
	bc := controllers.NewBillController(db)

	bill, err := bc.Generate(9, 60.0, 0, 0)
	assert.NoError(t, err)

	found, err := bc.GetByID(bill.ID)
	assert.NoError(t, err)
	assert.Equal(t, bill.ID, found.ID)
	assert.Equal(t, 60.0, found.FinalAmount)

	_, err = bc.GetByID(99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetBillByOrderIDMissing(t *testing.T) {
	db := setupTestDBForBills(t)
	bc := controllers.NewBillController(db)

	_, err := bc.GetByOrderID(42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteBillMissingIsNoOp(t *testing.T) {
	db := setupTestDBForBills(t)
	bc := controllers.NewBillController(db)

	assert.NoError(t, bc.Delete(99))
}
