package services

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"tracker-service/internal/models"
	"tracker-service/internal/repository"
)

// ProjectService mediates project access for a principal. Every id-keyed
// lookup checks ownership; a project owned by someone else is reported
// exactly like a missing one.
type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) CreateProject(project *models.Project) error {
	return errors.Wrap(s.repo.CreateProject(project), "create project")
}

// GetOwnedProject loads a project by id on behalf of ownerID.
func (s *ProjectService) GetOwnedProject(id uint, ownerID string) (*models.Project, error) {
	project, err := s.repo.GetProject(id)
	if err != nil {
		return nil, errors.Wrap(err, "load project")
	}
	if project.OwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	return project, nil
}

func (s *ProjectService) UpdateProject(project *models.Project) error {
	return errors.Wrap(s.repo.UpdateProject(project), "update project")
}

// DeleteProject removes the project and all of its tasks atomically.
func (s *ProjectService) DeleteProject(id uint, ownerID string) error {
	if _, err := s.GetOwnedProject(id, ownerID); err != nil {
		return err
	}
	return errors.Wrap(s.repo.DeleteProject(id), "delete project")
}

func (s *ProjectService) ListProjects(ownerID string) ([]models.Project, error) {
	projects, err := s.repo.ListProjectsByOwner(ownerID)
	return projects, errors.Wrap(err, "list projects")
}
