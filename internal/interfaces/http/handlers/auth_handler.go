package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/middleware"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/response"
	"github.com/Gitau-joseph/projectz/internal/usecases"
	"github.com/Gitau-joseph/projectz/pkg/crypto"
	"github.com/Gitau-joseph/projectz/pkg/redis"
)

const sessionTTL = 24 * time.Hour

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
	sessions    *redis.SessionStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, sessions *redis.SessionStore) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		sessions:    sessions,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.CreateUserInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("Username or email already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful. Please log in.",
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"email":     user.Email,
			"kycStatus": user.KYCStatus,
		},
	})
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.Unauthorized("Invalid email or password"))
			return
		}
		response.Error(c, err)
		return
	}

	if h.sessions != nil {
		sessionID, sessionErr := crypto.GenerateSessionID()
		if sessionErr == nil {
			sessionErr = h.sessions.CreateSession(c.Request.Context(), sessionID, &redis.SessionData{
				UserID:       authResponse.User.ID,
				AccessToken:  authResponse.AccessToken,
				RefreshToken: authResponse.RefreshToken,
			}, sessionTTL)
		}
		if sessionErr == nil {
			authResponse.SessionID = sessionID
			c.SetCookie(middleware.SessionCookie, sessionID, int(sessionTTL.Seconds()), "/", "", false, true)
		}
	}

	// Set tokens in cookies
	c.SetCookie(middleware.TokenCookie, authResponse.AccessToken, 3600*24, "/", "", false, true)
	c.SetCookie("refresh_token", authResponse.RefreshToken, 3600*24*7, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  authResponse.AccessToken,
		"refreshToken": authResponse.RefreshToken,
		"sessionId":    authResponse.SessionID,
		"user": gin.H{
			"id":        authResponse.User.ID,
			"username":  authResponse.User.Username,
			"email":     authResponse.User.Email,
			"kycStatus": authResponse.User.KYCStatus,
			"isAdmin":   authResponse.User.IsAdmin,
		},
	})
}

// Logout clears the session and auth cookies
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.sessions != nil {
		if sessionID, err := c.Cookie(middleware.SessionCookie); err == nil && sessionID != "" {
			_ = h.sessions.DeleteSession(c.Request.Context(), sessionID)
		}
	}

	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// GetMe returns the authenticated user's profile
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
