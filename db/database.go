package db

import (
	"fmt"
	"log"
	"net/url"

	"court_docket_app_go/config"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize sets up the database connection. Postgres wins over Turso, which
// wins over the local SQLite file (WAL mode).
func Initialize(cfg *config.Config) error {
	var err error

	// Determine log level based on environment
	logLevel := logger.Info
	if cfg.IsProduction() {
		logLevel = logger.Warn
	}

	dialector, backend := Dialector(cfg)

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Unique index violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("Database connection established (%s)", backend)
	return nil
}

// Dialector picks the GORM dialector for the configured backend
func Dialector(cfg *config.Config) (gorm.Dialector, string) {
	switch {
	case cfg.DatabaseURL != "":
		return postgres.Open(cfg.DatabaseURL), "postgres"
	case cfg.TursoDatabaseURL != "":
		return sqlite.New(sqlite.Config{
			DriverName: "libsql",
			DSN:        tursoDSN(cfg.TursoDatabaseURL, cfg.TursoAuthToken),
		}), "turso"
	default:
		return sqlite.Open(SQLiteDSN(cfg.DBPath)), "sqlite WAL mode"
	}
}

// SQLiteDSN enables WAL mode, waits on a locked database instead of failing,
// and starts transactions with BEGIN IMMEDIATE so a read-then-write transaction
// holds the write lock from its first statement.
func SQLiteDSN(path string) string {
	return path + "?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate"
}

func tursoDSN(databaseURL, authToken string) string {
	if authToken == "" {
		return databaseURL
	}
	u, err := url.Parse(databaseURL)
	if err != nil {
		return databaseURL
	}
	q := u.Query()
	q.Set("authToken", authToken)
	u.RawQuery = q.Encode()
	return u.String()
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
