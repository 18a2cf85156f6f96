package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gitau-joseph/projectz/internal/domain/repositories"
	"github.com/Gitau-joseph/projectz/pkg/jwt"
	"github.com/Gitau-joseph/projectz/pkg/logger"
	"github.com/Gitau-joseph/projectz/pkg/redis"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// TokenCookie is the cookie holding the access token
	TokenCookie = "token"
	// SessionCookie is the cookie holding the server-side session ID
	SessionCookie = "session_id"
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// IsAdminKey is the context key for the admin flag carried in the token
	IsAdminKey = "isAdmin"
)

// AuthMiddleware authenticates requests. It accepts, in order: a Bearer
// token in the Authorization header, an access token in the "token"
// cookie, or a "session_id" cookie resolved against the session store.
func AuthMiddleware(jwtService *jwt.JWTService, sessions *redis.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c, sessions)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			logger.Debug(c.Request.Context(), "auth: token rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(IsAdminKey, claims.IsAdmin)

		c.Next()
	}
}

func tokenFromRequest(c *gin.Context, sessions *redis.SessionStore) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if strings.HasPrefix(authHeader, BearerPrefix) {
		return strings.TrimPrefix(authHeader, BearerPrefix)
	}

	if token, err := c.Cookie(TokenCookie); err == nil && token != "" {
		return token
	}

	if sessions != nil {
		if sessionID, err := c.Cookie(SessionCookie); err == nil && sessionID != "" {
			session, err := sessions.GetSession(c.Request.Context(), sessionID)
			if err == nil && session != nil {
				return session.AccessToken
			}
		}
	}

	return ""
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetUserEmail gets the user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// RequireAdmin rejects non-admin callers. The admin flag is read back
// from the user record on every request rather than trusted from the
// token, so a revoked admin loses access as soon as the row changes.
func RequireAdmin(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			return
		}

		c.Next()
	}
}
