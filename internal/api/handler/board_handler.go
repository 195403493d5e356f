package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bigitcorp/taskboard/internal/api/metrics"
	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// BoardHandler serves the kanban read model and the drag-and-drop move.
type BoardHandler struct {
	board ports.BoardService
}

func NewBoardHandler(board ports.BoardService) *BoardHandler {
	return &BoardHandler{board: board}
}

// Get handles GET /v1/board. Filter criteria come from query parameters and
// are AND-combined; absent ones are ignored.
//
// @Summary      Get the filtered kanban board
// @Tags         board
// @Produce      json
// @Security     BearerAuth
// @Param        search     query     string  false  "Substring match on title or description"
// @Param        projectId  query     string  false  "Exact project id"
// @Param        priority   query     string  false  "low, medium or high"
// @Param        assignee   query     string  false  "Exact assignee id"
// @Success      200        {object}  ports.Board
// @Router       /v1/board [get]
func (h *BoardHandler) Get(c echo.Context) error {
	board, err := h.board.Board(c.Request().Context(), ports.BoardFilter{
		Search:    c.QueryParam("search"),
		ProjectID: c.QueryParam("projectId"),
		Priority:  domain.TaskPriority(c.QueryParam("priority")),
		Assignee:  c.QueryParam("assignee"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

// Move handles POST /v1/tasks/:id/move.
//
// @Summary      Move a task to another lane
// @Tags         board
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Task id"
// @Param        body  body      moveTaskRequest  true  "Target status"
// @Success      200   {object}  domain.Task
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/tasks/{id}/move [post]
func (h *BoardHandler) Move(c echo.Context) error {
	var req moveTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.board.MoveTask(c.Request().Context(), c.Param("id"), domain.TaskStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.TasksMovedTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, task)
}
