package config

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Components gom các kết nối hạ tầng của app
type Components struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
	Elastic    *elasticsearch.Client
}

func InitApp() (*gin.Engine, *cron.Cron) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Request-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	c := cron.New()

	return router, c
}

func InitComponents(ctx context.Context, cfg *Config) (*Components, error) {
	db, err := ConnectDB(cfg)
	if err != nil {
		return nil, err
	}

	cld, err := ConnectCloudinary(cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	es, err := ConnectElastic(cfg)
	if err != nil {
		return nil, err
	}

	log.Println("All components initialized successfully")
	return &Components{DB: db, Redis: rdb, Cloudinary: cld, Elastic: es}, nil
}
