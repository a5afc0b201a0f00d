package repository

import (
	"gorm.io/gorm"

	"tracker-service/internal/models"
)

// TaskRepository provides methods to interact with the Task model in the database.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository instance with the provided GORM database connection.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask creates a new Task in the database.
func (r *TaskRepository) CreateTask(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetTask retrieves a Task by its ID from the database.
func (r *TaskRepository) GetTask(id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	return &task, err
}

// UpdateTask updates an existing Task in the database.
func (r *TaskRepository) UpdateTask(task *models.Task) error {
	return r.db.Save(task).Error
}

// DeleteTask deletes a Task by its ID from the database.
func (r *TaskRepository) DeleteTask(id uint) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}

// ListTasksByProject retrieves all Tasks of a Project, newest first.
func (r *TaskRepository) ListTasksByProject(projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}
