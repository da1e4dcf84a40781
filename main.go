package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"restaurant-manager/config"
	"restaurant-manager/menu"
	"restaurant-manager/models"
	"restaurant-manager/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	if err := run(); err != nil {
		utils.ErrorLogger.Errorf("Session aborted: %v", err)
		os.Exit(1)
	}
}

// run owns the connection lifecycle so the handle is released on every
// exit path, including store failures.
func run() error {
	db, err := config.InitDB()
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := autoMigrate(db); err != nil {
		return err
	}

	if err := menu.Run(db, os.Stdin, os.Stdout); err != nil {
		return err
	}
	utils.InfoLogger.Println("Session closed.")
	return nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Table{},
		&models.Order{},
		&models.Bill{},
		&models.Payment{},
		&models.TableBooking{},
	)
}
