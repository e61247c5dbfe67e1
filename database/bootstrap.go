package database

import (
	"errors"
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	"farmdash/pkg/store"
	"farmdash/seed"
)

// OpenSQLite opens the database at path and migrates every farm table.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(
		&entities.Field{},
		&entities.Crop{},
		&entities.Task{},
		&entities.Expense{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// Seed copies the embedded seed records into empty tables. Tables that
// already hold rows are left alone.
func Seed(db *gorm.DB) error {
	if err := seedTable[entities.Field](db, seed.Fields); err != nil {
		return err
	}
	if err := seedTable[entities.Crop](db, seed.Crops); err != nil {
		return err
	}
	if err := seedTable[entities.Task](db, seed.Tasks); err != nil {
		return err
	}
	return seedTable[entities.Expense](db, seed.Expenses)
}

func seedTable[T any](db *gorm.DB, file string) error {
	var n int64
	if err := db.Model(new(T)).Count(&n).Error; err != nil {
		return fmt.Errorf("count %s: %w", file, err)
	}
	if n > 0 {
		return nil
	}
	rows, err := store.LoadJSON[T](seed.FS, file)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed %s: %w", file, err)
	}
	log.Printf("[db] seeded %d rows from %s", len(rows), file)
	return nil
}

// Translate maps gorm errors onto apperr codes.
func Translate(err error, what string, id int) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(fmt.Sprintf("%s %d not found", what, id))
	}
	return apperr.Wrap(apperr.CodeInternal, what, err)
}
