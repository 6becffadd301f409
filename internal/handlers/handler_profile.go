package handlers

import (
	"net/http"

	"github.com/SscSPs/ipt_portal_app/internal/dto"
	"github.com/SscSPs/ipt_portal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerProfileRoutes sets up the profile route for the session account.
func registerProfileRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", getProfile)
}

// getProfile godoc
// @Summary Current account profile
// @Description Returns the account behind the session token.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func getProfile(c *gin.Context) {
	account, ok := middleware.GetSessionAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
