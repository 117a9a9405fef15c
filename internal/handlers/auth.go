package handlers

import (
	"errors"
	"net/http"
	"time"

	"challengeboard/internal/auth"
	dom "challengeboard/internal/domain"
	"challengeboard/internal/dto"
	"challengeboard/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles register, login, logout and the current-user view.
type AuthHandler struct {
	sessions     *auth.Store
	userSvc      *service.UserService
	cookieMaxAge int
}

// NewAuthHandler returns a new AuthHandler. sessionTTL drives the cookie
// Max-Age so the client-side lifetime tracks the server-side session TTL.
func NewAuthHandler(sessions *auth.Store, userSvc *service.UserService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{sessions: sessions, userSvc: userSvc, cookieMaxAge: cookieMaxAge(sessionTTL)}
}

func cookieMaxAge(ttl time.Duration) int {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return int(ttl / time.Second)
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
			return
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	sessionID, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.SetCookie(auth.SessionCookieName, sessionID, h.cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "user": userToResponse(user)})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	sessionID, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.SetCookie(auth.SessionCookieName, sessionID, h.cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": userToResponse(user)})
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err == nil && sessionID != "" {
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	user, err := h.userSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			// Session points at a user that no longer resolves.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MeResponse{
		ID:        user.ID,
		Username:  user.Username,
		Points:    user.Points,
		CreatedAt: user.CreatedAt,
	})
}

func userToResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Username: u.Username, Points: u.Points}
}
