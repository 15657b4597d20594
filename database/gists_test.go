package database

import (
	"context"
	"testing"

	"codeforge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGist(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	gist, err := db.CreateGist(ctx, models.CreateGistRequest{
		Language: "python",
		Code:     "print('hi')",
	})

	require.NoError(t, err)
	assert.Len(t, gist.ID, 10)
	assert.Equal(t, "Untitled", gist.Title, "default title applied")
	assert.Equal(t, "vs-dark", gist.Theme, "default theme applied")
	assert.Equal(t, "python", gist.Language)
	assert.Zero(t, gist.ViewCount)
}

func TestGetGist_IncrementsViewCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	created, err := db.CreateGist(ctx, models.CreateGistRequest{
		Title:    "Counter",
		Language: "go",
		Code:     "package main",
	})
	require.NoError(t, err)

	// Each sequential read counts exactly once.
	first, err := db.GetGist(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ViewCount)

	second, err := db.GetGist(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ViewCount)
	assert.Equal(t, created.Code, second.Code)
}

func TestGetGist_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	_, err := db.GetGist(ctx, "missing1234")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateGist(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	created, err := db.CreateGist(ctx, models.CreateGistRequest{
		Language: "python",
		Code:     "print(1)",
	})
	require.NoError(t, err)

	err = db.UpdateGist(ctx, created.ID, models.UpdateGistRequest{
		Title:    "Renamed",
		Language: "python",
		Code:     "print(2)",
		Theme:    "light",
	})
	require.NoError(t, err)

	updated, err := db.GetGist(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "print(2)", updated.Code)
	assert.Equal(t, "light", updated.Theme)
}

func TestUpdateGist_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	err := db.UpdateGist(ctx, "missing1234", models.UpdateGistRequest{
		Language: "python",
		Code:     "print(1)",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListGists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		_, err := db.CreateGist(ctx, models.CreateGistRequest{
			Title:    title,
			Language: "python",
			Code:     "pass",
		})
		require.NoError(t, err)
	}

	gists, err := db.ListGists(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, gists, 3)

	gists, err = db.ListGists(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, gists, 2)
}

func TestDeleteGist(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	created, err := db.CreateGist(ctx, models.CreateGistRequest{
		Language: "python",
		Code:     "pass",
	})
	require.NoError(t, err)

	err = db.DeleteGist(ctx, created.ID)
	require.NoError(t, err)

	_, err = db.GetGist(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = db.DeleteGist(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
