package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

// Config gom toàn bộ cấu hình đọc từ môi trường
type Config struct {
	Env            string        `default:"dev"`
	Port           string        `default:"8083"`
	LogLevel       string        `default:"info"`
	Timezone       string        `default:"Asia/Ho_Chi_Minh"`
	JWTSecret      string        `default:"secret"`
	TokenTTL       time.Duration `default:"168h"`
	GoogleClientID string
	BcryptCost     int    `default:"10"`
	ReportCron     string `default:"0 0 * * *"`

	RedisAddr     string `default:"localhost:6379"`
	RedisUser     string
	RedisPassword string

	CloudinaryCloud  string
	CloudinaryKey    string
	CloudinarySecret string

	ElasticURL      string
	ElasticUser     string
	ElasticPassword string
	ElasticIndex    string `default:"ads"`
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// Load nạp .env rồi đọc cấu hình, trường trống dùng giá trị mặc định
func Load() (*Config, error) {
	LoadEnv()

	cfg := &Config{
		Env:              os.Getenv("ENV"),
		Port:             os.Getenv("PORT"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		Timezone:         os.Getenv("TZ_NAME"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		GoogleClientID:   os.Getenv("GOOGLE_CLIENT_ID"),
		ReportCron:       os.Getenv("REPORT_CRON"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisUser:        os.Getenv("REDIS_USER"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		CloudinaryCloud:  os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySecret: os.Getenv("CLOUDINARY_API_SECRET"),
		ElasticURL:       os.Getenv("ELASTIC_URL"),
		ElasticUser:      os.Getenv("ELASTIC_USER"),
		ElasticPassword:  os.Getenv("ELASTIC_PASSWORD"),
		ElasticIndex:     os.Getenv("ELASTIC_INDEX"),
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = ttl
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = cost
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}
	return cfg, nil
}

// Location trả về timezone dùng để tính "hôm nay"
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: invalid timezone %q, fallback to UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}

// ConnectCloudinary trả về nil khi chưa cấu hình Cloudinary
func ConnectCloudinary(cfg *Config) (*cloudinary.Cloudinary, error) {
	if cfg.CloudinaryCloud == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return cld, nil
}
