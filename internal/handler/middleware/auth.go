package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey  = "user_id"
	ctxIsAdminKey = "is_admin"
)

type AuthMiddleware struct {
	tokenValidator usecase.AuthUseCase
}

func NewAuthMiddleware(tokenValidator usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		userID, isAdmin, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		setAuthContext(c, userID, isAdmin)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, ok := GetIsAdmin(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin only",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not
// abort on failure. Booking creation uses it so guests can book while a valid
// token still records ownership.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			// No token present; continue without setting context.
			c.Next()
			return
		}

		userID, isAdmin, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			// Invalid token; continue as guest.
			c.Next()
			return
		}

		setAuthContext(c, userID, isAdmin)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func setAuthContext(c *gin.Context, userID uuid.UUID, isAdmin bool) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxIsAdminKey, isAdmin)
	c.Set("jwt_claims", map[string]any{
		"user_id":  userID.String(),
		"is_admin": strconv.FormatBool(isAdmin),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetIsAdmin(c *gin.Context) (bool, bool) {
	isAdmin, exists := c.Get(ctxIsAdminKey)
	if !exists {
		return false, false
	}

	flag, ok := isAdmin.(bool)
	return flag, ok
}

// GetActor returns the authenticated principal for permission checks.
func GetActor(c *gin.Context) (booking.Actor, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return booking.Actor{}, false
	}

	isAdmin, ok := GetIsAdmin(c)
	if !ok {
		return booking.Actor{}, false
	}

	return booking.Actor{ID: userID, IsAdmin: isAdmin}, true
}
