package main

import (
	"fmt"
	"log"

	"smart_canteen/internal/config"
	"smart_canteen/internal/database"
	"smart_canteen/internal/models"
	"smart_canteen/internal/repository"
	"smart_canteen/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.User{},
		&models.Canteen{},
		&models.Item{},
		&models.Order{},
		&models.OrderLine{},
		&models.TokenCounter{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Canteen{},
		&models.Item{},
		&models.Order{},
		&models.OrderLine{},
		&models.TokenCounter{},
	)
	if err != nil {
		log.Fatal("Failed to create tables:", err)
	}

	// Seed demo accounts and menu
	fmt.Println("Seeding demo data...")
	userRepo := repository.NewUserRepository(db)
	canteenRepo := repository.NewCanteenRepository(db)
	itemRepo := repository.NewItemRepository(db)

	userService := services.NewUserService(userRepo)
	canteenService := services.NewCanteenService(canteenRepo)
	itemService := services.NewItemService(itemRepo, canteenRepo, nil)

	owner, err := userService.Register("Demo Owner", "owner@campus.edu", "owner123", string(models.RoleOwner))
	if err != nil {
		log.Fatal("Failed to create demo owner:", err)
	}

	if _, err := userService.Register("Demo Student", "student@campus.edu", "student123", string(models.RoleStudent)); err != nil {
		log.Fatal("Failed to create demo student:", err)
	}

	canteen, err := canteenService.AddCanteen(owner.ID, "Snack Bar", "Main Block", "08:00", "20:00", "")
	if err != nil {
		log.Fatal("Failed to create demo canteen:", err)
	}

	menu := []struct {
		name     string
		price    float64
		category string
	}{
		{"Masala Dosa", 50, "Breakfast"},
		{"Veg Sandwich", 30, "Snacks"},
		{"Cold Coffee", 40, "Beverages"},
	}
	for _, m := range menu {
		if _, err := itemService.AddItem(owner.ID, canteen.ID, m.name, m.price, m.category, "https://example.com/"+m.category+".jpg"); err != nil {
			log.Fatal("Failed to create demo item:", err)
		}
	}

	fmt.Println("Database initialized successfully!")
}
