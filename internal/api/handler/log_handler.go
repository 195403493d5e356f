package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// LogHandler serves the audit trail, newest first, with CSV and JSON
// download variants.
type LogHandler struct {
	logs ports.LogRepository
}

func NewLogHandler(logs ports.LogRepository) *LogHandler {
	return &LogHandler{logs: logs}
}

// List handles GET /v1/logs.
//
// @Summary      List audit log entries, newest first
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        type  query    string  false  "filter by entry type"
// @Success      200  {array}  domain.LogEntry
// @Router       /v1/logs [get]
func (h *LogHandler) List(c echo.Context) error {
	entries, err := h.logs.List(c.Request().Context())
	if err != nil {
		return err
	}

	if logType := c.QueryParam("type"); logType != "" {
		filtered := make([]domain.LogEntry, 0, len(entries))
		for _, e := range entries {
			if e.Type == logType {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	return c.JSON(http.StatusOK, entries)
}

// Export handles GET /v1/logs/export?format=csv|json, serving the audit trail
// as a file download.
func (h *LogHandler) Export(c echo.Context) error {
	entries, err := h.logs.List(c.Request().Context())
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("taskboard-logs-%s", time.Now().Format("2006-01-02"))

	format := c.QueryParam("format")
	switch format {
	case "", "json":
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.json", filename))
		return c.JSON(http.StatusOK, entries)
	case "csv":
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.csv", filename))
		c.Response().Header().Set(echo.HeaderContentType, "text/csv")
		c.Response().WriteHeader(http.StatusOK)

		w := csv.NewWriter(c.Response())
		if err := w.Write([]string{"id", "timestamp", "type", "action", "description", "user_id", "user_name"}); err != nil {
			return err
		}
		for _, e := range entries {
			record := []string{
				e.ID,
				e.Timestamp.UTC().Format(time.RFC3339),
				e.Type,
				e.Action,
				e.Description,
				e.UserID,
				e.UserName,
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "format must be csv or json")
	}
}
