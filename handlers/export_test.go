package handlers

import (
	"court_docket_app_go/services"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestStoredExportHandlers(t *testing.T) {
	database := setupTestDB(t)
	e := setupEcho()
	caseRecord := createTestCase(t, database)
	createTestHearing(t, e, caseRecord.ID, "2026-03-18")

	rec := doRequest(e, http.MethodPost, "/api/hearings/reminders/export", nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var exported exportResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exported))
	assert.Equal(t, "/api/"+exported.Key, exported.DownloadURL)

	t.Run("Download", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, exported.DownloadURL, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, services.XLSXContentType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), exported.FileName)

		f, err := excelize.OpenReader(rec.Body)
		if assert.NoError(t, err) {
			rows, err := f.GetRows(services.SheetEnrolmentReminders)
			assert.NoError(t, err)
			assert.Len(t, rows, 2)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/exports/enrolment-reminders/missing.xlsx", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		rec := doRequest(e, http.MethodDelete, exported.DownloadURL, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doRequest(e, http.MethodGet, exported.DownloadURL, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("StorageUnavailable", func(t *testing.T) {
		services.Storage = nil

		rec := doRequest(e, http.MethodGet, exported.DownloadURL, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		rec = doRequest(e, http.MethodPost, "/api/hearings/reminders/export", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "Storage is not configured"))
	})
}
