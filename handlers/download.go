package handlers

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log"
	"net/http"

	"codeforge/database"
	"codeforge/models"

	"github.com/gin-gonic/gin"
)

// DownloadProject streams the project as a zip attachment. Folders are
// omitted: the archive contains only file entries, named by their
// stored paths, so the tree structure falls out of the member names.
func DownloadProject(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID := c.Param("id")

		ctx := c.Request.Context()
		project, err := db.GetProject(ctx, projectID)
		if err != nil {
			respondStorageError(c, err, "Project not found", "Failed to fetch project")
			return
		}

		files, err := db.FilesForArchive(ctx, projectID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to download project",
			})
			return
		}

		archive, err := buildZip(files)
		if err != nil {
			log.Printf("DownloadProject zip error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to download project",
			})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", project.Name+".zip"))
		c.Data(http.StatusOK, "application/zip", archive)
	}
}

// buildZip packs file entries into a zip, preserving the given order.
// Nil content (never expected here, but possible for legacy rows)
// becomes an empty member.
func buildZip(files []models.ProjectFile) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, file := range files {
		entry, err := w.Create(file.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", file.Path, err)
		}
		content := ""
		if file.Content != nil {
			content = *file.Content
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			return nil, fmt.Errorf("failed to write %s to archive: %w", file.Path, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return buf.Bytes(), nil
}
