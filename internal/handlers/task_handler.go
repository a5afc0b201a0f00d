package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"tracker-service/internal/auth"
	"tracker-service/internal/models"
	"tracker-service/internal/services"
)

// TaskHandler serves the task actions: the quick status change, delete, and
// the full edit form.
type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// UpdateTaskStatus is the single-click status change. The short token from
// the link is mapped onto the status enum; unknown tokens change nothing.
func (h *TaskHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)
	id, ok := parseID(c)
	if !ok {
		return renderProblem(c)
	}
	status, ok := models.ParseQuickToken(c.Params("status"))
	if !ok {
		return renderProblem(c)
	}

	task, project, err := h.taskService.GetOwnedTask(id, principal.OID)
	if err != nil {
		return renderProblem(c)
	}
	task.Status = status
	if err := h.taskService.UpdateTask(task); err != nil {
		log.Error().Err(err).Uint("task_id", id).Msg("updating task status failed")
		return renderProblem(c)
	}
	return c.Redirect(fmt.Sprintf("/project/%d", project.ID), fiber.StatusFound)
}

// DeleteTask removes a task and returns to its project's detail view.
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)
	id, ok := parseID(c)
	if !ok {
		return renderProblem(c)
	}

	task, project, err := h.taskService.GetOwnedTask(id, principal.OID)
	if err != nil {
		return renderProblem(c)
	}
	if err := h.taskService.DeleteTask(task.ID); err != nil {
		log.Error().Err(err).Uint("task_id", id).Msg("deleting task failed")
		return renderProblem(c)
	}
	return c.Redirect(fmt.Sprintf("/project/%d", project.ID), fiber.StatusFound)
}

// TaskDetails renders the full edit form for a task.
func (h *TaskHandler) TaskDetails(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)
	id, ok := parseID(c)
	if !ok {
		return renderProblem(c)
	}

	task, project, err := h.taskService.GetOwnedTask(id, principal.OID)
	if err != nil {
		return renderProblem(c)
	}
	return c.Render("task_details", fiber.Map{
		"User":    principal,
		"Task":    task,
		"Project": project,
	})
}

// SubmitTaskDetails overwrites name, description and status from the form.
// Status goes through the same enum validation as the quick action, so a
// free-text value can never be persisted.
func (h *TaskHandler) SubmitTaskDetails(c *fiber.Ctx) error {
	principal := auth.CurrentPrincipal(c)
	id, ok := parseID(c)
	if !ok {
		return renderProblem(c)
	}
	status := models.Status(c.FormValue("status"))
	if !status.Valid() {
		return renderProblem(c)
	}

	task, project, err := h.taskService.GetOwnedTask(id, principal.OID)
	if err != nil {
		return renderProblem(c)
	}
	task.Name = c.FormValue("name")
	task.Description = c.FormValue("description")
	task.Status = status
	if err := h.taskService.UpdateTask(task); err != nil {
		log.Error().Err(err).Uint("task_id", id).Msg("updating task failed")
		return renderProblem(c)
	}
	return c.Redirect(fmt.Sprintf("/project/%d", project.ID), fiber.StatusFound)
}
