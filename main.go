package main

import (
	"context"
	"errors"
	"log"
	"os"

	"autobazaar/config"
	"autobazaar/constants"
	"autobazaar/jobs"
	"autobazaar/repositories"
	"autobazaar/routes"
	"autobazaar/services"
	"autobazaar/services/logger"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "autobazaar",
		Usage: "backend rao vặt ô tô",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "chạy HTTP server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "tạo/cập nhật bảng trong database",
				Action: migrate,
			},
			{
				Name:   "reindex",
				Usage:  "ghi lại toàn bộ ads vào Elasticsearch",
				Action: reindex,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func migrate(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}
	if err := config.Migrate(db); err != nil {
		return err
	}
	log.Println("Migration completed")
	return nil
}

func reindex(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}
	es, err := config.ConnectElastic(cfg)
	if err != nil {
		return err
	}
	if es == nil {
		return errors.New("ELASTIC_URL is not set")
	}

	ads := services.NewAdService(services.AdServiceOptions{
		Ads:    repositories.NewAdRepository(db),
		Index:  services.NewElasticAdIndex(es, cfg.ElasticIndex),
		Logger: logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel)),
	})
	n, err := ads.Reindex(c.Context)
	if err != nil {
		return err
	}
	log.Printf("Reindexed %d ads", n)
	return nil
}

// adIndex trả về nil khi chưa cấu hình Elasticsearch
func adIndex(components *config.Components, cfg *config.Config) services.AdIndex {
	if components.Elastic == nil {
		return nil
	}
	return services.NewElasticAdIndex(components.Elastic, cfg.ElasticIndex)
}

func serve(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))

	ctx := context.Background()
	components, err := config.InitComponents(ctx, cfg)
	if err != nil {
		return err
	}
	if err := config.Migrate(components.DB); err != nil {
		return err
	}

	router, cronJobs := config.InitApp()
	defer cronJobs.Stop()

	handlers := routes.NewHandlers(routes.Options{
		Users:    repositories.NewUserRepository(components.DB),
		Ads:      repositories.NewAdRepository(components.DB),
		Rates:    repositories.NewRateRepository(components.DB),
		Comments: repositories.NewCommentRepository(components.DB),
		Tokens:   services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		Hasher:   services.NewBcryptHasher(cfg.BcryptCost),
		Google:   services.NewGoogleVerifier(cfg.GoogleClientID),
		Revoker:  services.NewRedisTokenRevoker(components.Redis),
		Uploader: services.NewCloudinaryUploader(components.Cloudinary, constants.AdUploadFolder),
		Index:    adIndex(components, cfg),
		Location: cfg.Location(),
		Logger:   appLogger,
	})

	if err := jobs.InitCronJobs(cronJobs, cfg.ReportCron, handlers.Admin.Admin); err != nil {
		return err
	}
	if err := routes.SetupRoutes(router, handlers); err != nil {
		return err
	}

	log.Println("Server starting on port " + cfg.Port + "...")
	return router.Run(":" + cfg.Port)
}
