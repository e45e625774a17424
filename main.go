package main

import (
	"log"
	"os"

	"github.com/Sefbongo/DeviceInventorySystem/cmd"
	"github.com/Sefbongo/DeviceInventorySystem/internal/core/logger"
	"github.com/Sefbongo/DeviceInventorySystem/internal/database"
	"github.com/Sefbongo/DeviceInventorySystem/internal/inventory/category"
	"github.com/Sefbongo/DeviceInventorySystem/internal/inventory/records"
	"github.com/Sefbongo/DeviceInventorySystem/internal/inventory/search"
	"github.com/Sefbongo/DeviceInventorySystem/internal/repository"
	"github.com/Sefbongo/DeviceInventorySystem/internal/users"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	inventoryDB, err := database.NewSQLiteConnection(envOr("INVENTORY_DB_PATH", "DeviceInventory.db"))
	if err != nil {
		zapLogger.Fatal("unable to open inventory store", zap.Error(err))
	}
	defer inventoryDB.Close()

	accountsDB, err := database.NewSQLiteConnection(envOr("ACCOUNTS_DB_PATH", "accounts.db"))
	if err != nil {
		zapLogger.Fatal("unable to open accounts store", zap.Error(err))
	}
	defer accountsDB.Close()

	if err := database.MigrateInventory(inventoryDB, zapLogger); err != nil {
		zapLogger.Fatal("inventory migration failed", zap.Error(err))
	}
	if err := database.MigrateAccounts(accountsDB, zapLogger); err != nil {
		zapLogger.Fatal("accounts migration failed", zap.Error(err))
	}

	inventoryRepo := repository.NewRepository(inventoryDB)
	accountsRepo := repository.NewRepository(accountsDB)

	accountService := users.NewAccountService(users.NewRepository(accountsRepo), zapLogger)
	if err := accountService.EnsureDefaults(); err != nil {
		zapLogger.Fatal("default account seeding failed", zap.Error(err))
	}

	app := &cmd.App{
		Records:    records.NewRecordService(records.NewRepository(inventoryRepo), zapLogger),
		Categories: category.NewCategoryService(category.NewRepository(inventoryRepo), zapLogger),
		Search:     search.NewRepository(inventoryRepo),
		Accounts:   accountService,
		Log:        zapLogger,
	}

	cmd.Execute(app)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
