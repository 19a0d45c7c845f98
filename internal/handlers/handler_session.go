package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/dto"
	"github.com/SscSPs/printshop_pos/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler handles employee sign-in and sign-out.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{sessionService: ss}
}

// registerSessionRoutes splits the public login route from the authenticated ones.
func registerSessionRoutes(public, authed *gin.RouterGroup, sessionService portssvc.SessionSvcFacade, loginLimit gin.HandlerFunc) {
	h := newSessionHandler(sessionService)

	if loginLimit != nil {
		public.POST("/session/login", loginLimit, h.login)
	} else {
		public.POST("/session/login", h.login)
	}

	session := authed.Group("/session")
	{
		session.POST("/logout", h.logout)
		session.GET("/me", h.me)
	}
}

// login godoc
// @Summary Sign in
// @Description Starts a session for an employee. Admins must supply the shop PIN.
// @Tags session
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Employee identity"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /session/login [post]
func (h *sessionHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "Login", err)
		return
	}

	logger = logger.With(slog.String("employee_id", req.EmployeeID), slog.String("role", string(req.Role)))
	logger.Info("Received login request")

	resp, err := h.sessionService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to sign in")
		return
	}

	logger.Info("Employee signed in", slog.Time("expires_at", resp.ExpiresAt))
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Sign out
// @Description Forgets the persisted session.
// @Tags session
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /session/logout [post]
func (h *sessionHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireActor(c, logger); !ok {
		return
	}

	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to sign out")
		return
	}

	logger.Info("Employee signed out")
	c.Status(http.StatusNoContent)
}

// me godoc
// @Summary Current session
// @Description Returns the persisted session, or 404 when nobody is signed in.
// @Tags session
// @Produce json
// @Success 200 {object} domain.Session
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /session/me [get]
func (h *sessionHandler) me(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireActor(c, logger); !ok {
		return
	}

	session, err := h.sessionService.Current(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load session")
		return
	}
	c.JSON(http.StatusOK, session)
}
