package handlers

import (
	"log"
	"net/http"
	"strconv"

	"codeforge/database"
	"codeforge/models"

	"github.com/gin-gonic/gin"
)

func CreateGist(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateGistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Language and code are required",
			})
			return
		}

		ctx := c.Request.Context()
		gist, err := db.CreateGist(ctx, req)
		if err != nil {
			log.Printf("CreateGist database error: %v", err)
			respondStorageError(c, err, "Gist not found", "Failed to create gist")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"gist":    gist,
			"url":     "/gist/" + gist.ID,
		})
	}
}

func GetGist(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		gist, err := db.GetGist(ctx, c.Param("id"))
		if err != nil {
			respondStorageError(c, err, "Gist not found", "Failed to fetch gist")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"gist":    gist,
		})
	}
}

func UpdateGist(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateGistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Language and code are required",
			})
			return
		}

		ctx := c.Request.Context()
		if err := db.UpdateGist(ctx, c.Param("id"), req); err != nil {
			respondStorageError(c, err, "Gist not found", "Failed to update gist")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Gist updated successfully",
		})
	}
}

func ListGists(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))

		ctx := c.Request.Context()
		gists, err := db.ListGists(ctx, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to list gists",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"gists":   gists,
		})
	}
}

func DeleteGist(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := db.DeleteGist(ctx, c.Param("id")); err != nil {
			respondStorageError(c, err, "Gist not found", "Failed to delete gist")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Gist deleted successfully",
		})
	}
}
