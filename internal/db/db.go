package db

import (
	"github.com/ah0048/BrainWise-JobTask/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.SessionToken{},
		&models.Company{},
		&models.Department{},
		&models.Employee{},
	); err != nil {
		return nil, err
	}

	return database, nil
}
