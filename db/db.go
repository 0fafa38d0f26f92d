package db

import (
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var Instance *gorm.DB

// Init opens the configured database and keeps it in Instance.
// It panics on failure, the server cannot do anything without storage.
func Init(mysqlDSN, sqliteFile string, debug bool) {
	db, err := Open(mysqlDSN, sqliteFile, debug)
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}

// Open prefers MySQL when a DSN is given and falls back to SQLite
func Open(mysqlDSN, sqliteFile string, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	isSQLite := false
	switch {
	case mysqlDSN != "":
		dsn, err := NormalizeMySQLDSN(mysqlDSN)
		if err != nil {
			return nil, err
		}
		dialector = mysql.Open(dsn)
	case sqliteFile != "":
		dialector = sqlite.Open(SQLiteDSN(sqliteFile))
		isSQLite = true
	default:
		return nil, errors.New("no database configured, set MYSQL_DSN or SQLITE_FILE")
	}
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}
	if isSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite has a single writer, queue in the pool instead of failing with "database is locked"
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// NormalizeMySQLDSN makes sure time columns are parsed and utf8mb4 is used.
// clientFoundRows makes UPDATE report matched rows, the status check in
// store.UpdateInvite depends on it.
func NormalizeMySQLDSN(dsn string) (string, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid MYSQL_DSN: %w", err)
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if _, ok := cfg.Params["charset"]; !ok {
		cfg.Params["charset"] = "utf8mb4"
	}
	return cfg.FormatDSN(), nil
}

// SQLiteDSN turns on foreign keys so answer/payment cascades work. Writers
// wait up to 5s for the lock and transactions take the write lock on BEGIN.
func SQLiteDSN(file string) string {
	return "file:" + file + "?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
}

// OpenMemory opens a private in-memory SQLite database. All connections of the
// returned pool share it, name keeps separate databases apart.
func OpenMemory(name string) (*gorm.DB, error) {
	dsn := "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// shared-cache sqlite locks whole tables, one connection avoids "table is locked"
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
