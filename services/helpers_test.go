package services

import (
	"court_docket_app_go/config"
	dbpkg "court_docket_app_go/db"
	"court_docket_app_go/models"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// monday is the "today" most tests run on
var monday = time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Case{}, &models.Hearing{}, &models.HearingOutcome{}, &models.AuditLog{}))
	t.Cleanup(WaitForAuditWrites)
	return db
}

// setupFileTestDB opens a WAL database file the way the server does, with a
// real connection pool so concurrent transactions actually overlap.
func setupFileTestDB(t *testing.T, maxConns int) *gorm.DB {
	dialector, _ := dbpkg.Dialector(&config.Config{DBPath: filepath.Join(t.TempDir(), "docket.db")})
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(maxConns)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Case{}, &models.Hearing{}, &models.HearingOutcome{}, &models.AuditLog{}))
	return db
}

func createTestCase(t *testing.T, db *gorm.DB, number string) *models.Case {
	caseRecord := &models.Case{CaseNumber: number}
	require.NoError(t, db.Create(caseRecord).Error)
	return caseRecord
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
