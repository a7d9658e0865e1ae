package handlers

import (
	"court_docket_app_go/db"
	"court_docket_app_go/middleware"
	"court_docket_app_go/models"
	"court_docket_app_go/services"
	"fmt"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
)

// exportKey rebuilds the storage key from the /exports/* wildcard
func exportKey(c echo.Context) string {
	return services.ExportKeyPrefix + c.Param("*")
}

// DownloadExportHandler streams a stored docket export
func DownloadExportHandler(c echo.Context) error {
	key := exportKey(c)

	reader, contentType, err := services.OpenDocketExport(c.Request().Context(), services.Storage, key)
	if err != nil {
		return serviceError(err, "Failed to fetch export")
	}
	defer reader.Close()

	c.Response().Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, path.Base(key)))
	return c.Stream(http.StatusOK, contentType, reader)
}

// DeleteExportHandler removes a stored docket export
func DeleteExportHandler(c echo.Context) error {
	key := exportKey(c)

	if err := services.DeleteDocketExport(c.Request().Context(), services.Storage, key); err != nil {
		return serviceError(err, "Failed to delete export")
	}

	services.LogAuditEvent(db.DB, middleware.GetAuditContext(c), models.AuditActionDelete,
		models.AuditResourceDocket, key, path.Base(key),
		"Export deleted", nil, nil)

	return c.NoContent(http.StatusNoContent)
}
