package handlers

import (
	"log"
	"net/http"

	"codeforge/database"
	"codeforge/models"

	"github.com/gin-gonic/gin"
)

func CreateFile(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateFileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "File path is required",
			})
			return
		}

		ctx := c.Request.Context()
		file, err := db.CreateFile(ctx, c.Param("id"), req.Path, req.Content, req.IsFolder)
		if err != nil {
			log.Printf("CreateFile database error: %v", err)
			respondStorageError(c, err, "Project not found", "Failed to create file")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"file":    file,
		})
	}
}

func UpdateFile(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateFileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid request body",
			})
			return
		}

		ctx := c.Request.Context()
		err := db.UpdateFile(ctx, c.Param("id"), c.Param("fileId"), req.Content, req.Path)
		if err != nil {
			respondStorageError(c, err, "File not found", "Failed to update file")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "File updated successfully",
		})
	}
}

func DeleteFile(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		err := db.DeleteFile(ctx, c.Param("id"), c.Param("fileId"))
		if err != nil {
			respondStorageError(c, err, "File not found", "Failed to delete file")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "File deleted successfully",
		})
	}
}
