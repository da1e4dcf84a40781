package controllers

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurant-manager/models"
	"restaurant-manager/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Create -> register a staff account. The password is stored as a
// bcrypt hash; there is no login flow, this is plain data hygiene.
func (uc *UserController) Create(username, password, email, phone, role string) (models.User, error) {
	parsedRole, err := models.ParseUserRole(role)
	if err != nil {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username: username,
		Password: string(hashed),
		Email:    email,
		Phone:    phone,
		Role:     parsedRole,
		Active:   true,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Username, user.Role)
	return user, nil
}

func (uc *UserController) GetAll() ([]models.User, error) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateEmail is the only user update the console offers.
func (uc *UserController) UpdateEmail(userID uint, email string) (models.User, error) {
	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}

	user.Email = email
	if err := uc.DB.Save(&user).Error; err != nil {
		return models.User{}, err
	}
	utils.InfoLogger.Printf("User %d email updated", user.ID)
	return user, nil
}

func (uc *UserController) Delete(userID uint) error {
	if err := uc.DB.Delete(&models.User{}, userID).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("User %d deleted", userID)
	return nil
}
