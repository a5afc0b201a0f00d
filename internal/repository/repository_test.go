package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tracker-service/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second pool connection would see its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Task{}))
	return db
}

func TestDeleteProjectCascadesToTasks(t *testing.T) {
	db := newTestDB(t)
	projects := NewProjectRepository(db)
	tasks := NewTaskRepository(db)

	kept := &models.Project{OwnerID: "owner-a", Name: "kept", Description: "stays"}
	doomed := &models.Project{OwnerID: "owner-a", Name: "doomed", Description: "goes"}
	require.NoError(t, projects.CreateProject(kept))
	require.NoError(t, projects.CreateProject(doomed))

	require.NoError(t, tasks.CreateTask(&models.Task{ProjectID: doomed.ID, Name: "t1", Status: models.StatusToDo}))
	require.NoError(t, tasks.CreateTask(&models.Task{ProjectID: doomed.ID, Name: "t2", Status: models.StatusDone}))
	require.NoError(t, tasks.CreateTask(&models.Task{ProjectID: kept.ID, Name: "t3", Status: models.StatusToDo}))

	require.NoError(t, projects.DeleteProject(doomed.ID))

	_, err := projects.GetProject(doomed.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var orphaned int64
	require.NoError(t, db.Model(&models.Task{}).Where("project_id = ?", doomed.ID).Count(&orphaned).Error)
	require.Zero(t, orphaned)

	remaining, err := tasks.ListTasksByProject(kept.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
}

func TestListProjectsByOwnerPartitions(t *testing.T) {
	db := newTestDB(t)
	projects := NewProjectRepository(db)

	require.NoError(t, projects.CreateProject(&models.Project{OwnerID: "owner-a", Name: "mine", Description: "d"}))
	require.NoError(t, projects.CreateProject(&models.Project{OwnerID: "owner-b", Name: "theirs", Description: "d"}))

	mine, err := projects.ListProjectsByOwner("owner-a")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	for _, p := range mine {
		require.Equal(t, "owner-a", p.OwnerID)
	}

	none, err := projects.ListProjectsByOwner("owner-c")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestListTasksByProjectNewestFirst(t *testing.T) {
	db := newTestDB(t)
	projects := NewProjectRepository(db)
	tasks := NewTaskRepository(db)

	project := &models.Project{OwnerID: "owner-a", Name: "p", Description: "d"}
	require.NoError(t, projects.CreateProject(project))

	now := time.Now().UTC()
	older := &models.Task{ProjectID: project.ID, Name: "older", Status: models.StatusToDo, CreatedAt: now.Add(-time.Hour)}
	newer := &models.Task{ProjectID: project.ID, Name: "newer", Status: models.StatusToDo, CreatedAt: now}
	require.NoError(t, tasks.CreateTask(older))
	require.NoError(t, tasks.CreateTask(newer))

	got, err := tasks.ListTasksByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "newer", got[0].Name)
	require.Equal(t, "older", got[1].Name)
}
