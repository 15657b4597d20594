package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	project, err := db.CreateProject(ctx, "Test Project", "A playground")

	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.Len(t, project.ID, 10)
	assert.Equal(t, "Test Project", project.Name)
	assert.Equal(t, "A playground", project.Description)
	assert.False(t, project.CreatedAt.IsZero())
	assert.False(t, project.UpdatedAt.IsZero())
}

func TestCreateProject_DefaultFiles(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	project, err := db.CreateProject(ctx, "Starter", "demo")
	require.NoError(t, err)

	retrieved, err := db.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, retrieved.Files, 3)

	// Canonical order: the "src" folder first, then paths ascending.
	src := retrieved.Files[0]
	assert.Equal(t, "src", src.Path)
	assert.True(t, src.IsFolder)
	assert.Nil(t, src.ParentPath)

	readme := retrieved.Files[1]
	assert.Equal(t, "README.md", readme.Path)
	assert.Nil(t, readme.ParentPath)

	index := retrieved.Files[2]
	assert.Equal(t, "src/index.js", index.Path)
	require.NotNil(t, index.ParentPath)
	assert.Equal(t, "src", *index.ParentPath)
}

func TestGetProject_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	_, err := db.GetProject(ctx, "missing1234")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProjects(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	projects, err := db.ListProjects(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, projects)

	_, err = db.CreateProject(ctx, "Project 1", "")
	require.NoError(t, err)
	_, err = db.CreateProject(ctx, "Project 2", "")
	require.NoError(t, err)
	_, err = db.CreateProject(ctx, "Project 3", "")
	require.NoError(t, err)

	projects, err = db.ListProjects(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, projects, 3)

	projects, err = db.ListProjects(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestDeleteProject_CascadesFiles(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	project, err := db.CreateProject(ctx, "Doomed", "")
	require.NoError(t, err)

	err = db.DeleteProject(ctx, project.ID)
	require.NoError(t, err)

	_, err = db.GetProject(ctx, project.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM project_files WHERE project_id = $1`, project.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count, "files removed by FK cascade")
}

func TestDeleteProject_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	err := db.DeleteProject(ctx, "missing1234")
	assert.ErrorIs(t, err, ErrNotFound)
}
