package handlers

import (
	"net/http"

	"codeforge/models"
	"codeforge/piston"

	"github.com/gin-gonic/gin"
)

// Execute proxies a code run to Piston. Execution failures are not
// faults: whatever happens upstream, a renderable result comes back
// with 200 so the editor always has output to show. Only a request
// missing language or code is rejected outright.
func Execute(client *piston.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ExecuteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Language and code are required",
			})
			return
		}

		version := piston.Version(req.Language)

		ctx := c.Request.Context()
		result := client.Execute(ctx, req.Language, version, req.Code, req.Stdin, req.Args)

		c.JSON(http.StatusOK, result)
	}
}

func ListRuntimes(client *piston.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		runtimes, err := client.Runtimes(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to fetch available runtimes",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"runtimes": runtimes,
		})
	}
}
