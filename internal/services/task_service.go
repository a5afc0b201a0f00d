package services

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"tracker-service/internal/models"
	"tracker-service/internal/repository"
)

// TaskService mediates task access. A task is reachable only through its
// owning project, so every lookup resolves the project and checks that the
// principal owns it.
type TaskService struct {
	repo     *repository.TaskRepository
	projects *repository.ProjectRepository
}

func NewTaskService(repo *repository.TaskRepository, projects *repository.ProjectRepository) *TaskService {
	return &TaskService{
		repo:     repo,
		projects: projects,
	}
}

// CreateTask creates a task under the given project. Status always starts at
// TO_DO regardless of what the caller submitted.
func (s *TaskService) CreateTask(projectID uint, name, description string) (*models.Task, error) {
	task := &models.Task{
		ProjectID:   projectID,
		Name:        name,
		Description: description,
		Status:      models.StatusToDo,
	}
	if err := s.repo.CreateTask(task); err != nil {
		return nil, errors.Wrap(err, "create task")
	}
	return task, nil
}

// GetOwnedTask loads a task and its project on behalf of ownerID.
func (s *TaskService) GetOwnedTask(id uint, ownerID string) (*models.Task, *models.Project, error) {
	task, err := s.repo.GetTask(id)
	if err != nil {
		return nil, nil, errors.Wrap(err, "load task")
	}
	project, err := s.projects.GetProject(task.ProjectID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "load task project")
	}
	if project.OwnerID != ownerID {
		return nil, nil, gorm.ErrRecordNotFound
	}
	return task, project, nil
}

func (s *TaskService) UpdateTask(task *models.Task) error {
	return errors.Wrap(s.repo.UpdateTask(task), "update task")
}

func (s *TaskService) DeleteTask(id uint) error {
	return errors.Wrap(s.repo.DeleteTask(id), "delete task")
}

// ListProjectTasks returns the project's tasks ordered by creation time,
// newest first.
func (s *TaskService) ListProjectTasks(projectID uint) ([]models.Task, error) {
	tasks, err := s.repo.ListTasksByProject(projectID)
	return tasks, errors.Wrap(err, "list tasks")
}
