package db

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/mattn/go-sqlite3"
)

const (
	UniqueConstrain = 1555

	driverName = "sqlite3_zks"

	// applied to every connection of the pool, a plain Exec would only reach one of them
	connPragmas = `
		PRAGMA foreign_keys = ON;
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;
		PRAGMA journal_size_limit = 6144000;
	`
)

var (
	ErrNotFound = errors.New("not found")

	registerDriver sync.Once
)

// NewSQLiteDB opens the SQLite DB at dbPath. Readers wait for the writer instead of failing with SQLITE_BUSY
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	registerDriver.Do(func() {
		sql.Register(driverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				_, err := conn.Exec(connPragmas, nil)
				return err
			},
		})
	})
	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return nil, err
	}
	// connections are lazy, fail here on a wrong path
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// ReturnErrNotFound maps sql.ErrNoRows to ErrNotFound
func ReturnErrNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
