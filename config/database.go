package config

import (
	"fmt"

	"github.com/Meera-417/VastraKart/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	if err := MigrateDB(DB); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}

// MigrateDB runs the schema migrations. Split out so tests can run the same
// migrations against their own database handle.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Customer{},
		&models.Address{},
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.ProductImage{},
		&models.Banner{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentTransaction{},
	)
}
