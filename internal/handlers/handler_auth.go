package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/SscSPs/ipt_portal_app/internal/core/ports/services"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
	"github.com/SscSPs/ipt_portal_app/internal/middleware"
	"github.com/SscSPs/ipt_portal_app/internal/platform/config"
	"github.com/SscSPs/ipt_portal_app/internal/utils"
)

// pendingEmailSessionKey holds the email awaiting verification in the
// visitor's cookie session between the register and verify steps.
const pendingEmailSessionKey = "unverified_email"

// authHandler handles registration, verification and login.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{authService: as, cfg: cfg}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService, cfg)

	// 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(limitermem.NewStore(), rate)

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/verify", h.verify)
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
		auth.POST("/logout", h.logout)
	}
}

// register godoc
// @Summary Register a new account
// @Description Creates an unverified user-role account and records the email as pending verification.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration form"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to register account")
		return
	}

	sess := sessions.Default(c)
	sess.Set(pendingEmailSessionKey, account.Email)
	if err := sess.Save(); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to save pending verification session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record pending verification"})
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account registered, verification pending", slog.String("email", account.Email))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// verify godoc
// @Summary Verify the pending email
// @Description Marks the pending account as verified. Simulated verification: no code is checked.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.VerifyResponse
// @Failure 400 {object} ErrorResponse "No email pending verification"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Router /auth/verify [post]
func (h *authHandler) verify(c *gin.Context) {
	sess := sessions.Default(c)
	pending, ok := sess.Get(pendingEmailSessionKey).(string)
	if !ok || pending == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No email found to verify"})
		return
	}

	account, err := h.authService.VerifyEmail(c.Request.Context(), pending)
	if err != nil {
		respondServiceError(c, err, "Failed to verify email")
		return
	}

	sess.Delete(pendingEmailSessionKey)
	if err := sess.Save(); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to clear pending verification session", slog.String("error", err.Error()))
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Email verified", slog.String("email", account.Email))
	c.JSON(http.StatusOK, dto.VerifyResponse{Email: account.Email, Verified: account.Verified})
}

// login godoc
// @Summary Log in
// @Description Authenticates and returns a session token. The failure message does not distinguish bad credentials from an unverified account.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Rate limited"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	account, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// One generic message for every failure mode.
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email/password or email not verified"})
		return
	}

	token, err := utils.GenerateJWT(account.Email, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Login succeeded", slog.String("email", account.Email))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// logout godoc
// @Summary Log out
// @Description Clears the cookie session. The bearer token is discarded client-side.
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	if err := sess.Save(); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to clear session on logout", slog.String("error", err.Error()))
	}
	c.Status(http.StatusNoContent)
}
