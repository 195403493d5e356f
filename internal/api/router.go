package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/bigitcorp/taskboard/internal/api/handler"
	"github.com/bigitcorp/taskboard/internal/api/middleware"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// Services bundles the core services the router exposes.
type Services struct {
	Auth          ports.AuthService
	Tasks         ports.TaskService
	Board         ports.BoardService
	Projects      ports.ProjectService
	Notifications ports.NotificationService
	Settings      ports.SettingsService
	Backups       ports.BackupService
	Logs          ports.LogRepository
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, store ports.Store, driver, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskboard"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	taskHandler := handler.NewTaskHandler(svc.Tasks, svc.Notifications)
	boardHandler := handler.NewBoardHandler(svc.Board)
	projectHandler := handler.NewProjectHandler(svc.Projects)
	notifHandler := handler.NewNotificationHandler(svc.Notifications)
	logHandler := handler.NewLogHandler(svc.Logs)
	settingsHandler := handler.NewSettingsHandler(svc.Settings)
	backupHandler := handler.NewBackupHandler(svc.Backups)

	auth := middleware.Auth(jwtSecret)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store, driver)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/v1")

	// --- Auth routes ---
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout, auth)
	v1.GET("/auth/me", authHandler.Me, auth)

	// --- Authenticated API ---
	g := v1.Group("", auth)

	g.GET("/tasks", taskHandler.List)
	g.POST("/tasks", taskHandler.Create)
	g.GET("/tasks/:id", taskHandler.Get)
	g.PUT("/tasks/:id", taskHandler.Update)
	g.DELETE("/tasks/:id", taskHandler.Delete)
	g.POST("/tasks/:id/move", boardHandler.Move)
	g.POST("/tasks/:id/remind", taskHandler.Remind)

	g.POST("/tasks/:id/checklist", taskHandler.AddChecklistItem)
	g.PUT("/tasks/:id/checklist/:itemId", taskHandler.UpdateChecklistItem)
	g.POST("/tasks/:id/checklist/:itemId/toggle", taskHandler.ToggleChecklistItem)
	g.DELETE("/tasks/:id/checklist/:itemId", taskHandler.DeleteChecklistItem)

	g.POST("/tasks/:id/comments", taskHandler.AddComment)
	g.POST("/tasks/:id/checklist/:itemId/comments", taskHandler.AddChecklistItemComment)

	g.GET("/board", boardHandler.Get)

	g.GET("/projects", projectHandler.List)
	g.POST("/projects", projectHandler.Create)
	g.GET("/projects/:id", projectHandler.Get)
	g.PUT("/projects/:id", projectHandler.Update)
	g.DELETE("/projects/:id", projectHandler.Delete)
	g.POST("/projects/:id/toggle-status", projectHandler.ToggleStatus)

	g.GET("/notifications", notifHandler.List)
	g.GET("/notifications/trash", notifHandler.Trash)
	g.GET("/notifications/unread", notifHandler.UnreadCount)
	g.POST("/notifications", notifHandler.Create)
	g.PUT("/notifications/:id/read", notifHandler.SetRead)
	g.DELETE("/notifications/:id", notifHandler.SoftDelete)
	g.POST("/notifications/:id/restore", notifHandler.Restore)
	g.DELETE("/notifications/:id/purge", notifHandler.Purge)
	g.POST("/notifications/check-due", notifHandler.CheckDue)

	g.GET("/logs", logHandler.List)
	g.GET("/logs/export", logHandler.Export)

	g.GET("/settings", settingsHandler.Get)
	g.PUT("/settings", settingsHandler.Update)
	g.PUT("/settings/profile", settingsHandler.UpdateProfile)
	g.PUT("/settings/password", settingsHandler.ChangePassword)
	g.POST("/settings/clear-data", settingsHandler.ClearData)

	g.GET("/backup/export", backupHandler.Export)
	g.POST("/backup/import", backupHandler.Import)

	return e
}
