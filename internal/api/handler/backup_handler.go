package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bigitcorp/taskboard/internal/api/metrics"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// maxBackupBytes bounds the import payload.
const maxBackupBytes = 32 << 20

// BackupHandler serves the single-file export/import endpoints.
type BackupHandler struct {
	backups ports.BackupService
}

func NewBackupHandler(backups ports.BackupService) *BackupHandler {
	return &BackupHandler{backups: backups}
}

// Export handles GET /v1/backup/export, returning the full state as one
// downloadable JSON document.
//
// @Summary      Export all data
// @Tags         backup
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.BackupDocument
// @Router       /v1/backup/export [get]
func (h *BackupHandler) Export(c echo.Context) error {
	doc, err := h.backups.Export(c.Request().Context())
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("taskboard-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)

	metrics.BackupsTotal.WithLabelValues("export").Inc()
	return c.JSON(http.StatusOK, doc)
}

// Import handles POST /v1/backup/import. The request body is the backup
// document itself; on success every collection is replaced.
//
// @Summary      Import a backup, replacing all data
// @Tags         backup
// @Accept       json
// @Security     BearerAuth
// @Success      204  "No Content"
// @Failure      400  {object}  map[string]string
// @Router       /v1/backup/import [post]
func (h *BackupHandler) Import(c echo.Context) error {
	data, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBackupBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable payload")
	}

	if err := h.backups.Import(c.Request().Context(), data); err != nil {
		return err
	}

	metrics.BackupsTotal.WithLabelValues("import").Inc()
	return c.NoContent(http.StatusNoContent)
}
