package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JuaMGLz/Muebleria/config"
	"github.com/JuaMGLz/Muebleria/database"
	"github.com/JuaMGLz/Muebleria/web"
)

func main() {
	seed := flag.Bool("seed", false, "Seed database with a default administrator and starter categories")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// Initialize database connection
	if err := database.Initialize(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, cfg.AdminUniqueCredentials); err != nil {
		logrus.WithError(err).Fatal("Failed to create indexes")
	}

	if *seed {
		logrus.Info("Seeding database...")
		if err := database.SeedData(ctx); err != nil {
			logrus.WithError(err).Fatal("Failed to seed database")
		}
	}

	// Create and start web server
	server := web.NewServer(cfg)

	go func() {
		if err := server.Start(cfg.Port); err != nil {
			logrus.WithError(err).Fatal("Server failed to start")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
}
