package handlers

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"codeforge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	members := map[string]string{}
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		members[f.Name] = string(content)
	}
	return members
}

func TestBuildZip(t *testing.T) {
	readme := "# Demo"
	index := "console.log(1);"
	files := []models.ProjectFile{
		{Path: "README.md", Content: &readme},
		{Path: "src/index.js", Content: &index},
	}

	data, err := buildZip(files)
	require.NoError(t, err)

	members := readZip(t, data)
	require.Len(t, members, 2)
	assert.Equal(t, "# Demo", members["README.md"])
	assert.Equal(t, "console.log(1);", members["src/index.js"])
}

func TestBuildZip_NilContentBecomesEmpty(t *testing.T) {
	files := []models.ProjectFile{
		{Path: "empty.txt", Content: nil},
	}

	data, err := buildZip(files)
	require.NoError(t, err)

	members := readZip(t, data)
	assert.Equal(t, "", members["empty.txt"])
}

func TestBuildZip_Empty(t *testing.T) {
	data, err := buildZip(nil)
	require.NoError(t, err)

	members := readZip(t, data)
	assert.Empty(t, members)
}

func TestBuildZip_PreservesOrder(t *testing.T) {
	a, b := "1", "2"
	files := []models.ProjectFile{
		{Path: "a.txt", Content: &a},
		{Path: "b/c.txt", Content: &b},
	}

	data, err := buildZip(files)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)
	assert.Equal(t, "a.txt", reader.File[0].Name)
	assert.Equal(t, "b/c.txt", reader.File[1].Name)
}
