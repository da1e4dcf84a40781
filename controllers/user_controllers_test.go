package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"restaurant-manager/controllers"
	"restaurant-manager/models"
	"restaurant-manager/utils"
)

func setupTestDBForUsers(t *testing.T) *gorm.DB {
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
	if err := db.AutoMigrate(&models.User{}, &models.Customer{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestCreateUserHashesPassword(t *testing.T) {
	db := setupTestDBForUsers(t)
	uc := controllers.NewUserController(db)

	user, err := uc.Create("asha", "secret123", "asha@example.com", "555-0101", "Manager")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleManager, user.Role)
	assert.True(t, user.Active)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestCreateUserInvalidRole(t *testing.T) {
	db := setupTestDBForUsers(t)
	uc := controllers.NewUserController(db)

	_, err := uc.Create("ravi", "pw", "ravi@example.com", "", "Chef")
	var enumErr *models.InvalidEnumError
	assert.ErrorAs(t, err, &enumErr)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateUserEmail(t *testing.T) {
	db := setupTestDBForUsers(t)
	uc := controllers.NewUserController(db)

	user, err := uc.Create("asha", "pw", "old@example.com", "", "Waiter")
	assert.NoError(t, err)

	updated, err := uc.UpdateEmail(user.ID, "new@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)

	_, err = uc.UpdateEmail(99, "x@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUserMissingIsNoOp(t *testing.T) {
	db := setupTestDBForUsers(t)
	uc := controllers.NewUserController(db)

	assert.NoError(t, uc.Delete(99))
}

func TestCustomerLifecycle(t *testing.T) {
	db := setupTestDBForUsers(t)
	cc := controllers.NewCustomerController(db)

	customer, err := cc.Create("Dana", "555-0102", "dana@example.com")
	assert.NoError(t, err)
	assert.True(t, customer.Active)

	updated, err := cc.Update(customer.ID, "Dana K", "555-0103", "danak@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Dana K", updated.Name)
	assert.Equal(t, "555-0103", updated.Phone)

	assert.NoError(t, cc.Delete(customer.ID))
	_, err = cc.GetByID(customer.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting again is still fine.
	assert.NoError(t, cc.Delete(customer.ID))
}
