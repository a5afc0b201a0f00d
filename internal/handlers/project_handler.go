package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"tracker-service/internal/auth"
	"tracker-service/internal/models"
	"tracker-service/internal/services"
)

// ProjectHandler serves the project pages: list, create, update, delete and
// the per-project detail view with its three status buckets.
type ProjectHandler struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
}

func NewProjectHandler(projectService *services.ProjectService, taskService *services.TaskService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		taskService:    taskService,
	}
}

// ListProjects renders the signed-in principal's projects.
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)

	projects, err := h.projectService.ListProjects(principal.OID)
	if err != nil {
		log.Error().Err(err).Str("owner", principal.OID).Msg("listing projects failed")
		return renderProblem(c)
	}
	return c.Render("projects", fiber.Map{
		"User":     principal,
		"Projects": projects,
	})
}

// NewProjectForm renders the empty create form.
func (h *ProjectHandler) NewProjectForm(c *fiber.Ctx) error {
	return c.Render("project_form", fiber.Map{
		"User":    auth.CurrentPrincipal(c),
		"Project": models.Project{},
		"Title":   "Add a new project",
		"Action":  "/create",
	})
}

// CreateProject persists a new project from the submitted form. Both fields
// are required; a blank one renders the generic failure view and persists
// nothing.
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)

	name := c.FormValue("name")
	description := c.FormValue("description")
	if name == "" || description == "" {
		return renderProblem(c)
	}

	project := &models.Project{
		OwnerID:     principal.OID,
		Name:        name,
		Description: description,
	}
	if err := h.projectService.CreateProject(project); err != nil {
		log.Error().Err(err).Str("owner", principal.OID).Msg("creating project failed")
		return renderProblem(c)
	}
	return c.Redirect("/projects", fiber.StatusFound)
}

// EditProjectForm renders the update form pre-filled with the current values.
func (h *ProjectHandler) EditProjectForm(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)
	id, ok := parseID(c)
	if !ok {
		return renderProblem(c)
	}

	project, err := h.projectService.GetOwnedProject(id, principal.OID)
	if err != nil {
		return renderProblem(c)
	}
	return c.Render("project_form", fiber.Map{
		"User":    principal,
		"Project": project,
		"Title":   "Update project",
		"Action":  fmt.Sprintf("/update/%d", project.ID),
	})
}

// UpdateProject overwrites name and description with the submitted values.
// Unlike create, the fields are not re-validated here.
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)
	id, ok := parseID(c)
	if !ok {
		return renderProblem(c)
	}

	project, err := h.projectService.GetOwnedProject(id, principal.OID)
	if err != nil {
		return renderProblem(c)
	}
	project.Name = c.FormValue("name")
	project.Description = c.FormValue("description")
	if err := h.projectService.UpdateProject(project); err != nil {
		log.Error().Err(err).Uint("project_id", id).Msg("updating project failed")
		return renderProblem(c)
	}
	return c.Redirect("/", fiber.StatusFound)
}

// DeleteProject removes a project and, through the repository transaction,
// every task it contains.
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)
	id, ok := parseID(c)
	if !ok {
		return renderProblem(c)
	}

	if err := h.projectService.DeleteProject(id, principal.OID); err != nil {
		return renderProblem(c)
	}
	return c.Redirect("/", fiber.StatusFound)
}

// OpenProject renders the project detail view with the tasks partitioned
// into the three status buckets, newest first within each bucket.
func (h *ProjectHandler) OpenProject(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)
	id, ok := parseID(c)
	if !ok {
		return renderProblem(c)
	}

	project, err := h.projectService.GetOwnedProject(id, principal.OID)
	if err != nil {
		return renderProblem(c)
	}
	tasks, err := h.taskService.ListProjectTasks(project.ID)
	if err != nil {
		log.Error().Err(err).Uint("project_id", id).Msg("listing tasks failed")
		return renderProblem(c)
	}
	return c.Render("project_tasks", fiber.Map{
		"User":            principal,
		"Project":         project,
		"Tasks":           tasks,
		"TodoTasks":       models.FilterTasksByStatus(tasks, models.StatusToDo),
		"InProgressTasks": models.FilterTasksByStatus(tasks, models.StatusInProgress),
		"DoneTasks":       models.FilterTasksByStatus(tasks, models.StatusDone),
	})
}

// CreateTask handles the POST branch of the detail view: a new task under
// this project, always starting at TO_DO.
func (h *ProjectHandler) CreateTask(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)
	id, ok := parseID(c)
	if !ok {
		return renderProblem(c)
	}

	project, err := h.projectService.GetOwnedProject(id, principal.OID)
	if err != nil {
		return renderProblem(c)
	}
	if _, err := h.taskService.CreateTask(project.ID, c.FormValue("name"), c.FormValue("description")); err != nil {
		log.Error().Err(err).Uint("project_id", id).Msg("creating task failed")
		return renderProblem(c)
	}
	return c.Redirect(fmt.Sprintf("/project/%d", project.ID), fiber.StatusFound)
}
