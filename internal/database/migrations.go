package database

import (
	"database/sql"
	"embed"

	"github.com/Sefbongo/DeviceInventorySystem/internal/database/migration"

	"go.uber.org/zap"
)

//go:embed migrations/inventory/*.sql migrations/accounts/*.sql
var migrationsFS embed.FS

// MigrateInventory creates the inventory table and the six lookup tables on
// first run; later runs are no-ops.
func MigrateInventory(db *sql.DB, log *zap.Logger) error {
	return migration.Migrate(db, migrationsFS, "migrations/inventory", log)
}

// MigrateAccounts creates the accounts table. Default account seeding is not
// part of the schema: it happens in the users service, and only when the
// table is empty.
func MigrateAccounts(db *sql.DB, log *zap.Logger) error {
	return migration.Migrate(db, migrationsFS, "migrations/accounts", log)
}
