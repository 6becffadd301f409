package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ipt_portal_app/internal/core/ports/services"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
	"github.com/SscSPs/ipt_portal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles admin account management requests.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers the admin-only account routes.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts", middleware.RequireAdmin())
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.PUT("/:email", h.updateAccount)
		accounts.PUT("/:email/password", h.resetPassword)
		accounts.DELETE("/:email", h.deleteAccount)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Retrieves all accounts (admin only).
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// createAccount godoc
// @Summary Create an account
// @Description Creates an account with an admin-chosen role and verification state.
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create account")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created", slog.String("email", account.Email))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Description Overwrites the editable fields of the account. A changed email is re-checked for uniqueness.
// @Tags accounts
// @Accept json
// @Produce json
// @Param email path string true "Account email"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{email} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// resetPassword godoc
// @Summary Reset an account password
// @Tags accounts
// @Accept json
// @Produce json
// @Param email path string true "Account email"
// @Param password body dto.ResetPasswordRequest true "New password"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{email}/password [put]
func (h *accountHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.accountService.ResetPassword(c.Request.Context(), c.Param("email"), req.Password); err != nil {
		respondServiceError(c, err, "Failed to reset password")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Removes an account. Deleting the session's own account is refused.
// @Tags accounts
// @Produce json
// @Param email path string true "Account email"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Cannot delete self"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{email} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	session, ok := middleware.GetSessionAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("email"), session.Email); err != nil {
		respondServiceError(c, err, "Failed to delete account")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account deleted", slog.String("email", c.Param("email")))
	c.Status(http.StatusNoContent)
}
