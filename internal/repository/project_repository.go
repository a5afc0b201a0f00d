package repository

import (
	"gorm.io/gorm"

	"tracker-service/internal/models"
)

// ProjectRepository provides methods to interact with the Project model in the database.
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository instance with the provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// CreateProject creates a new Project in the database.
func (r *ProjectRepository) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetProject retrieves a Project by its ID from the database.
func (r *ProjectRepository) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	return &project, err
}

// UpdateProject updates an existing Project in the database.
func (r *ProjectRepository) UpdateProject(project *models.Project) error {
	return r.db.Save(project).Error
}

// DeleteProject deletes a Project and all of its Tasks in one transaction.
// The tasks go first so a failure can never leave orphans behind.
func (r *ProjectRepository) DeleteProject(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// ListProjectsByOwner retrieves all Projects owned by the given principal.
func (r *ProjectRepository) ListProjectsByOwner(ownerID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("owner_id = ?", ownerID).Find(&projects).Error
	return projects, err
}
