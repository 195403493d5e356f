package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bigitcorp/taskboard/internal/api/metrics"
	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// TaskHandler handles HTTP requests for tasks, their checklists and their
// comment threads.
type TaskHandler struct {
	tasks  ports.TaskService
	notifs ports.NotificationService
}

func NewTaskHandler(tasks ports.TaskService, notifs ports.NotificationService) *TaskHandler {
	return &TaskHandler{tasks: tasks, notifs: notifs}
}

// List handles GET /v1/tasks.
//
// @Summary      List all tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Task
// @Router       /v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.tasks.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get handles GET /v1/tasks/:id.
//
// @Summary      Get a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  domain.Task
// @Failure      404  {object}  map[string]string
// @Router       /v1/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	task, err := h.tasks.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Create handles POST /v1/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		ProjectID:   req.ProjectID,
		Assignee:    req.Assignee,
		Manager:     req.Manager,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	return c.JSON(http.StatusCreated, task)
}

// Update handles PUT /v1/tasks/:id.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  domain.Task
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.tasks.UpdateTask(c.Request().Context(), c.Param("id"), ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      statusPtr(req.Status),
		Priority:    priorityPtr(req.Priority),
		ProjectID:   req.ProjectID,
		Assignee:    req.Assignee,
		Manager:     req.Manager,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /v1/tasks/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.tasks.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Checklist routes ---

// AddChecklistItem handles POST /v1/tasks/:id/checklist.
func (h *TaskHandler) AddChecklistItem(c echo.Context) error {
	var req checklistItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.tasks.AddChecklistItem(c.Request().Context(), c.Param("id"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// ToggleChecklistItem handles POST /v1/tasks/:id/checklist/:itemId/toggle.
func (h *TaskHandler) ToggleChecklistItem(c echo.Context) error {
	item, err := h.tasks.ToggleChecklistItem(c.Request().Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// UpdateChecklistItem handles PUT /v1/tasks/:id/checklist/:itemId.
func (h *TaskHandler) UpdateChecklistItem(c echo.Context) error {
	var req checklistItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.tasks.UpdateChecklistItem(c.Request().Context(), c.Param("id"), c.Param("itemId"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteChecklistItem handles DELETE /v1/tasks/:id/checklist/:itemId.
func (h *TaskHandler) DeleteChecklistItem(c echo.Context) error {
	if err := h.tasks.DeleteChecklistItem(c.Request().Context(), c.Param("id"), c.Param("itemId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Comment routes ---

// AddComment handles POST /v1/tasks/:id/comments.
func (h *TaskHandler) AddComment(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.tasks.AddComment(c.Request().Context(), c.Param("id"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// AddChecklistItemComment handles POST /v1/tasks/:id/checklist/:itemId/comments.
func (h *TaskHandler) AddChecklistItemComment(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.tasks.AddChecklistItemComment(c.Request().Context(), c.Param("id"), c.Param("itemId"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// Remind handles POST /v1/tasks/:id/remind.
func (h *TaskHandler) Remind(c echo.Context) error {
	var req remindRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	notif, err := h.notifs.Remind(c.Request().Context(), c.Param("id"), req.Message)
	if err != nil {
		return err
	}

	metrics.NotificationsCreatedTotal.WithLabelValues(notif.Type).Inc()
	return c.JSON(http.StatusCreated, notif)
}

// --- Conversion helpers ---

func statusPtr(s *string) *domain.TaskStatus {
	if s == nil {
		return nil
	}
	v := domain.TaskStatus(*s)
	return &v
}

func priorityPtr(s *string) *domain.TaskPriority {
	if s == nil {
		return nil
	}
	v := domain.TaskPriority(*s)
	return &v
}
