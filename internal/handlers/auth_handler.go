package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rekib0023/expense-sharing-backend/internal/auth"
	apperrors "github.com/rekib0023/expense-sharing-backend/internal/errors"
	"github.com/rekib0023/expense-sharing-backend/internal/services"
)

// AuthHandler handles signup, login, token refresh, and logout.
type AuthHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{userService: userService, auditService: auditService}
}

// SignupRequest represents the signup request payload
type SignupRequest struct {
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse represents a token-issuing response.
type SessionResponse struct {
	Status      string `json:"status"`
	AccessToken string `json:"access_token"`
}

// Signup handles user registration
// @Summary     Create new user
// @Description Register a new user and start a session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body SignupRequest true "User registration data"
// @Success     201 {object} SessionResponse "User created and session started"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Router      /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accessToken, err := h.startSession(c, user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), user.ID, "signup", "user", user.ID, c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"status": "success", "access_token": accessToken})
}

// Login handles user login
// @Summary     Create access and refresh tokens for user
// @Description Authenticate a user and start a session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} SessionResponse "Session started"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Incorrect email or password"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.AttemptLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accessToken, err := h.startSession(c, user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), user.ID, "login", "user", user.ID, c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"status": "success", "access_token": accessToken})
}

// Refresh exchanges a valid refresh cookie for a new access token
// @Summary     Get refreshed access token
// @Description Issue a new access token from the refresh cookie
// @Tags        auth
// @Produce     json
// @Success     200 {object} SessionResponse "New access token issued"
// @Failure     401 {object} ErrorResponse "Not logged in, token invalid, or user gone"
// @Router      /auth/refresh [get]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := auth.RefreshTokenFromRequest(c)

	claims, err := auth.Parse(refreshToken, auth.TypeRefresh)
	if err != nil {
		if errors.Is(err, auth.ErrTokenMissing) {
			respondWithError(c, apperrors.ErrNotLoggedIn)
			return
		}
		respondWithError(c, apperrors.ErrTokenInvalid)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrUserNotFound.Code {
			respondWithError(c, apperrors.ErrUserGone)
			return
		}
		respondWithError(c, err)
		return
	}

	// A rotated-out or logged-out refresh token no longer matches the
	// stored digest and is rejected even though its signature is valid.
	storedHash, err := h.userService.GetRefreshTokenHash(c.Request.Context(), user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if storedHash == "" || storedHash != auth.HashToken(refreshToken) {
		respondWithError(c, apperrors.ErrTokenInvalid)
		return
	}

	accessToken, err := auth.IssueAccessToken(user.ID)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	auth.SetAccessCookies(c, accessToken)
	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// Logout ends the session
// @Summary     Log out
// @Description Invalidate the refresh token and clear session cookies
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SessionResponse "Session ended"
// @Failure     401 {object} ErrorResponse "Not logged in"
// @Router      /auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.userService.ClearRefreshTokenHash(c.Request.Context(), userID); err != nil {
		respondWithError(c, err)
		return
	}

	auth.ClearSessionCookies(c)
	h.auditService.Log(c.Request.Context(), userID, "logout", "user", userID, c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// startSession issues both tokens, persists the refresh token digest, and
// sets the session cookies. Returns the access token for the response body.
func (h *AuthHandler) startSession(c *gin.Context, userID uint) (string, error) {
	accessToken, err := auth.IssueAccessToken(userID)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	refreshToken, err := auth.IssueRefreshToken(userID)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := h.userService.StoreRefreshTokenHash(c.Request.Context(), userID, auth.HashToken(refreshToken)); err != nil {
		return "", err
	}

	auth.SetSessionCookies(c, accessToken, refreshToken)
	return accessToken, nil
}
