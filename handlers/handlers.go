package handlers

import (
	"errors"
	"net/http"

	"codeforge/database"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// respondStorageError maps storage-layer errors onto the API contract:
// path conflicts are caller mistakes (400), missing rows are 404,
// anything else is an opaque 500 carrying internalMsg.
func respondStorageError(c *gin.Context, err error, notFoundMsg, internalMsg string) {
	switch {
	case errors.Is(err, database.ErrDuplicatePath):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "File or folder already exists at this path",
		})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   notFoundMsg,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   internalMsg,
		})
	}
}
