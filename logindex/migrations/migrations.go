package migrations

import (
	"database/sql"
	_ "embed"

	"github.com/test091/zksync-era/db"
	"github.com/test091/zksync-era/db/types"
	"github.com/test091/zksync-era/log"
)

//go:embed logindex0001.sql
var mig001 string

var migrations = []types.Migration{
	{
		ID:  "logindex0001",
		SQL: mig001,
	},
}

func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, migrations)
}

func RunMigrationsDB(logger *log.Logger, database *sql.DB) error {
	return db.RunMigrationsDB(logger, database, migrations)
}
