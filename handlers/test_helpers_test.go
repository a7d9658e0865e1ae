package handlers

import (
	"bytes"
	"court_docket_app_go/db"
	"court_docket_app_go/middleware"
	"court_docket_app_go/models"
	"court_docket_app_go/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testToday is a Monday
var testToday = time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	// one connection keeps every goroutine on the same in-memory database
	sqlDB, err := testDB.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = testDB.AutoMigrate(
		&models.Case{},
		&models.Hearing{},
		&models.HearingOutcome{},
		&models.AuditLog{},
	)
	assert.NoError(t, err)

	services.Storage = services.NewLocalStorage(t.TempDir())

	// Set global DB
	db.DB = testDB
	t.Cleanup(services.WaitForAuditWrites)

	return testDB
}

func setupEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewRequestValidator()
	e.Use(middleware.AuditContext())
	e.Use(middleware.InjectClock(services.FixedClock{At: testToday}))
	RegisterAPIRoutes(e.Group("/api"))
	return e
}

func doRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderActorID, "clerk-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createTestCase(t *testing.T, database *gorm.DB) models.Case {
	caseRecord := models.Case{CaseNumber: "2026-" + time.Now().Format("150405.000000")}
	assert.NoError(t, database.Create(&caseRecord).Error)
	return caseRecord
}

func createTestHearing(t *testing.T, e *echo.Echo, caseID, date string) models.Hearing {
	rec := doRequest(e, http.MethodPost, "/api/cases/"+caseID+"/hearings", map[string]string{"date": date})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var hearing models.Hearing
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hearing))
	return hearing
}

func stringToPtr(s string) *string {
	return &s
}
