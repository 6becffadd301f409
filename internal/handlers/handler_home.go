package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Home
// @Description Public landing payload; no session required.
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "ipt-portal-app",
		"message": "Welcome to the IPT portal backend",
	})
}
