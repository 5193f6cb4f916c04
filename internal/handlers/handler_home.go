package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerHomeRoutes serves the landing probe used by the training UI to
// detect a live backend.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "bank-trainer-app",
			"bank":    "Mamun Bank",
			"status":  "running",
		})
	})
}
