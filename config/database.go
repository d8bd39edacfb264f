package config

import (
	"fmt"
	"log"
	"os"

	"autobazaar/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func getDBConfigByEnv(env string) (string, error) {
	var prefix, sslmode string

	switch env {
	case "local":
		prefix, sslmode = "LOCAL", "disable"
	case "dev":
		prefix, sslmode = "DEV", "require"
	case "qc":
		prefix, sslmode = "QC", "require"
	case "prod":
		prefix, sslmode = "PROD", "require"
	default:
		return "", fmt.Errorf("unknown environment: %s", env)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		os.Getenv(prefix+"_DB_HOST"),
		os.Getenv(prefix+"_DB_USER"),
		os.Getenv(prefix+"_DB_PASSWORD"),
		os.Getenv(prefix+"_DB_NAME"),
		os.Getenv(prefix+"_DB_PORT"),
		sslmode,
	)
	return dsn, nil
}

// GormConfig là cấu hình gorm dùng chung cho app và test
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn, err := getDBConfigByEnv(cfg.Env)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	log.Println("Successfully connected to db")
	return db, nil
}

// Migrate tạo / cập nhật bảng cho các model
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Ad{}, &models.Rate{}, &models.Comment{})
}
