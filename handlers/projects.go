package handlers

import (
	"log"
	"net/http"
	"strconv"

	"codeforge/database"
	"codeforge/models"

	"github.com/gin-gonic/gin"
)

func CreateProject(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Project name is required",
			})
			return
		}

		ctx := c.Request.Context()
		project, err := db.CreateProject(ctx, req.Name, req.Description)
		if err != nil {
			log.Printf("CreateProject database error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to create project",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"project": project,
		})
	}
}

func GetProject(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		project, err := db.GetProject(ctx, c.Param("id"))
		if err != nil {
			respondStorageError(c, err, "Project not found", "Failed to fetch project")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"project": project,
		})
	}
}

func ListProjects(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))

		ctx := c.Request.Context()
		projects, err := db.ListProjects(ctx, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to list projects",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"projects": projects,
		})
	}
}

func DeleteProject(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := db.DeleteProject(ctx, c.Param("id")); err != nil {
			respondStorageError(c, err, "Project not found", "Failed to delete project")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Project deleted successfully",
		})
	}
}
