package migrations

import (
	"log"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/database"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"

	"gorm.io/gorm"
)

// RunMigrations recreates the schema from scratch and seeds the default
// pricing catalog. Intended for first-time setup and local resets only.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.Customer{},
		&models.LaundryItem{},
		&models.ServiceType{},
		&models.Order{},
		&models.OrderItem{},
		&models.QualityCheck{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	if err := seedCatalog(db); err != nil {
		log.Printf("Warning: Failed to seed catalog: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// seedCatalog installs a starter pricing catalog so the order form has
// something to offer on a fresh install.
func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.LaundryItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalog already seeded")
		return nil
	}

	log.Println("Seeding default catalog...")

	items := []models.LaundryItem{
		{Name: "Shirt", PricePerItem: 20, IsActive: true},
		{Name: "Pants", PricePerItem: 50, IsActive: true},
		{Name: "T-Shirt", PricePerItem: 15, IsActive: true},
		{Name: "Saree", PricePerItem: 80, IsActive: true},
		{Name: "Bedsheet", PricePerItem: 60, IsActive: true},
		{Name: "Blanket", PricePerItem: 120, IsActive: true},
		{Name: "Curtain", PricePerItem: 90, IsActive: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	serviceTypes := []models.ServiceType{
		{Name: "Wash & Fold", Description: "Standard wash and fold service", PricePerKg: 40, IsActive: true},
		{Name: "Wash & Iron", Description: "Wash with pressing", PricePerKg: 60, IsActive: true},
		{Name: "Dry Clean", Description: "Professional dry cleaning", PricePerKg: 120, IsActive: true},
		{Name: "Express", Description: "Same-day turnaround", PricePerKg: 80, IsActive: true},
	}
	if err := db.Create(&serviceTypes).Error; err != nil {
		return err
	}

	log.Println("Default catalog seeded successfully!")
	return nil
}
