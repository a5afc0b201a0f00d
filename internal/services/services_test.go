package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tracker-service/internal/models"
	"tracker-service/internal/repository"
)

func newTestServices(t *testing.T) (*ProjectService, *TaskService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second pool connection would see its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Task{}))

	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	return NewProjectService(projectRepo), NewTaskService(taskRepo, projectRepo)
}

func TestGetOwnedProjectHidesForeignProjects(t *testing.T) {
	projects, _ := newTestServices(t)

	project := &models.Project{OwnerID: "owner-a", Name: "p", Description: "d"}
	require.NoError(t, projects.CreateProject(project))

	got, err := projects.GetOwnedProject(project.ID, "owner-a")
	require.NoError(t, err)
	require.Equal(t, project.ID, got.ID)

	_, err = projects.GetOwnedProject(project.ID, "owner-b")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProjectChecksOwnership(t *testing.T) {
	projects, _ := newTestServices(t)

	project := &models.Project{OwnerID: "owner-a", Name: "p", Description: "d"}
	require.NoError(t, projects.CreateProject(project))

	require.Error(t, projects.DeleteProject(project.ID, "owner-b"))

	still, err := projects.GetOwnedProject(project.ID, "owner-a")
	require.NoError(t, err)
	require.Equal(t, project.ID, still.ID)

	require.NoError(t, projects.DeleteProject(project.ID, "owner-a"))
}

func TestCreateTaskAlwaysStartsToDo(t *testing.T) {
	projects, tasks := newTestServices(t)

	project := &models.Project{OwnerID: "owner-a", Name: "p", Description: "d"}
	require.NoError(t, projects.CreateProject(project))

	task, err := tasks.CreateTask(project.ID, "write tests", "cover everything")
	require.NoError(t, err)
	require.Equal(t, models.StatusToDo, task.Status)
}

func TestGetOwnedTaskChecksProjectOwner(t *testing.T) {
	projects, tasks := newTestServices(t)

	project := &models.Project{OwnerID: "owner-a", Name: "p", Description: "d"}
	require.NoError(t, projects.CreateProject(project))
	task, err := tasks.CreateTask(project.ID, "t", "d")
	require.NoError(t, err)

	got, owner, err := tasks.GetOwnedTask(task.ID, "owner-a")
	require.NoError(t, err)
	require.Equal(t, task.ID, got.ID)
	require.Equal(t, project.ID, owner.ID)

	_, _, err = tasks.GetOwnedTask(task.ID, "owner-b")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
