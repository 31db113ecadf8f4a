package main

import (
	"log"
	"time"

	"github.com/RaihanAdityaP/savora-web-sub000/cmd/config"
	migration "github.com/RaihanAdityaP/savora-web-sub000/cmd/database/migrate"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/utils"
	"github.com/getsentry/sentry-go"
)

func main() {
	utils.LoadConfig()

	if dsn := utils.GetConfig("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			TracesSampleRate: 0.2,
		}); err != nil {
			log.Printf("sentry init failed: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up application: %v", err)
	}

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
