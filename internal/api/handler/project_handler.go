package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type createProjectRequest struct {
	Name                   string `json:"name"        validate:"required"`
	Description            string `json:"description"`
	ContractNumber         string `json:"contractNumber"`
	FiscalYear             string `json:"fiscalYear"`
	ProjectStartDate       string `json:"projectStartDate"       validate:"omitempty,datetime=2006-01-02"`
	ContractExpirationDate string `json:"contractExpirationDate" validate:"omitempty,datetime=2006-01-02"`
	Owner                  string `json:"owner"`
	Manager                string `json:"manager"`
	Status                 string `json:"status" validate:"omitempty,oneof=todo inprogress done"`
}

type updateProjectRequest struct {
	Name                   *string `json:"name"`
	Description            *string `json:"description"`
	ContractNumber         *string `json:"contractNumber"`
	FiscalYear             *string `json:"fiscalYear"`
	ProjectStartDate       *string `json:"projectStartDate"       validate:"omitempty,datetime=2006-01-02"`
	ContractExpirationDate *string `json:"contractExpirationDate" validate:"omitempty,datetime=2006-01-02"`
	Owner                  *string `json:"owner"`
	Manager                *string `json:"manager"`
	Status                 *string `json:"status" validate:"omitempty,oneof=todo inprogress done"`
}

// List handles GET /v1/projects.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Project
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projects.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Get handles GET /v1/projects/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projects.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create handles POST /v1/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      422   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.CreateProject(c.Request().Context(), ports.CreateProjectInput{
		Name:                   req.Name,
		Description:            req.Description,
		ContractNumber:         req.ContractNumber,
		FiscalYear:             req.FiscalYear,
		ProjectStartDate:       req.ProjectStartDate,
		ContractExpirationDate: req.ContractExpirationDate,
		Owner:                  req.Owner,
		Manager:                req.Manager,
		Status:                 domain.TaskStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Update handles PUT /v1/projects/:id.
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.UpdateProject(c.Request().Context(), c.Param("id"), ports.UpdateProjectInput{
		Name:                   req.Name,
		Description:            req.Description,
		ContractNumber:         req.ContractNumber,
		FiscalYear:             req.FiscalYear,
		ProjectStartDate:       req.ProjectStartDate,
		ContractExpirationDate: req.ContractExpirationDate,
		Owner:                  req.Owner,
		Manager:                req.Manager,
		Status:                 statusPtr(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /v1/projects/:id. Deleting a project that still has
// tasks assigned fails with 409.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projects.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleStatus handles POST /v1/projects/:id/toggle-status.
func (h *ProjectHandler) ToggleStatus(c echo.Context) error {
	project, err := h.projects.ToggleProjectStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}
