package database

import (
	"testing"

	"crmdesk/internal/config"
	"crmdesk/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestCustomer(t *testing.T, db *DB, fullName, email string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		FullName:    fullName,
		Email:       email,
		PhoneNumber: "555-010-2030",
		Address:     "1 Test Street, Testville",
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM customers").Error; err != nil {
		t.Logf("failed to cleanup customers table: %v", err)
	}
}
