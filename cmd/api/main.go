package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"stockroom/internal/config"
	applog "stockroom/internal/logger"
	"stockroom/internal/model"
	"stockroom/internal/repository"
	"stockroom/internal/repository/memory"
	"stockroom/internal/seed"
	"stockroom/internal/server"
	"stockroom/internal/ws"
	"stockroom/pkg/database"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := config.Load()
	if err := applog.Init(cfg.Environment); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zap.L().Sync()

	repos, err := buildRepositories(cfg)
	if err != nil {
		zap.L().Fatal("failed to initialize storage", zap.Error(err))
	}

	if err := seed.Run(repos); err != nil {
		zap.L().Warn("seeding failed", zap.Error(err))
	}

	hub := ws.NewHub()
	go hub.Run()

	app := server.New(cfg, repos, hub)

	go func() {
		zap.L().Info("server listening",
			zap.String("port", cfg.Port),
			zap.String("driver", cfg.StorageDriver),
		)
		if err := app.Listen(":" + cfg.Port); err != nil {
			zap.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")
	if err := app.Shutdown(); err != nil {
		zap.L().Error("forced shutdown", zap.Error(err))
	}
}

func buildRepositories(cfg *config.Config) (server.Repositories, error) {
	if cfg.StorageDriver == config.DriverMemory {
		store := memory.NewStore()
		return server.Repositories{
			Products:     memory.NewProductRepo(store),
			Categories:   memory.NewCategoryRepo(store),
			Suppliers:    memory.NewSupplierRepo(store),
			Inventory:    memory.NewInventoryRepo(store),
			Transactions: memory.NewTransactionRepo(store),
			Users:        memory.NewUserRepo(store),
		}, nil
	}

	db, err := database.ConnectDB()
	if err != nil {
		return server.Repositories{}, err
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.InventoryItem{},
		&model.StockTransaction{},
	); err != nil {
		return server.Repositories{}, err
	}

	return server.Repositories{
		Products:     repository.NewProductRepo(db),
		Categories:   repository.NewCategoryRepo(db),
		Suppliers:    repository.NewSupplierRepo(db),
		Inventory:    repository.NewInventoryRepo(db),
		Transactions: repository.NewTransactionRepo(db),
		Users:        repository.NewUserRepo(db),
	}, nil
}
