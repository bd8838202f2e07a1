package Models

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens (creating if absent) the database file at path and runs
// migrations. The returned handle is passed to every controller; there is
// no package-level connection.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema. Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Client{},
		&QtyType{},
		&RateUnit{},
		&ItemType{},
		&DeliveryPlace{},
		&PaymentType{},
		&Flag{},
		&Transaction{},
	)
}

// Close releases the underlying sql connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
