package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"hangman/config"
	"hangman/database"
	"hangman/metrics"
	"hangman/models"
	"hangman/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	// UserCacheKeyPrefix prefixes the redis keys of cached user rows
	UserCacheKeyPrefix = "user_session:"
	userCacheTTL       = 15 * time.Minute
	userContextKey     = "currentUser"
	// TokenTTL is the lifetime of issued auth tokens
	TokenTTL = 24 * time.Hour
)

// GenerateToken issues a signed JWT for the given user
func GenerateToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// AuthMiddleware resolves the current user from the bearer token and stores
// it in the request context. Requests without a valid token are rejected
// with 401 before reaching any handler.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		userID, err := parseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := loadUser(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// GetUserFromRequest returns the authenticated user placed in the context by
// AuthMiddleware. When absent it writes the 401 response itself, so callers
// only need to return on error.
func GetUserFromRequest(c *gin.Context) (*models.User, error) {
	value, exists := c.Get(userContextKey)
	if !exists {
		response.Error(c, http.StatusUnauthorized, "Unauthorized access")
		return nil, errors.New("no authenticated user in context")
	}
	user, ok := value.(*models.User)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized access")
		return nil, errors.New("invalid user in context")
	}
	return user, nil
}

// InvalidateUserCache drops the cached row of one user, forcing the next
// request to reload it from the database
func InvalidateUserCache(ctx context.Context, userID string) {
	if err := database.Redis.Del(ctx, UserCacheKeyPrefix+userID).Err(); err != nil {
		logrus.WithError(err).Warn("Failed to invalidate user cache")
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func parseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("invalid claims")
	}
	return claims.Subject, nil
}

// loadUser fetches the user row, preferring the redis cache over the
// database. Cache failures fall through to the database silently.
func loadUser(ctx context.Context, userID string) (*models.User, error) {
	key := UserCacheKeyPrefix + userID

	if cached, err := database.Redis.Get(ctx, key).Result(); err == nil {
		var user models.User
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			metrics.UserCacheHits.Inc()
			return &user, nil
		}
	}
	metrics.UserCacheMisses.Inc()

	var user models.User
	if err := database.DB.Preload("Course").Preload("Teacher").
		First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		if err := database.Redis.Set(ctx, key, payload, userCacheTTL).Err(); err != nil {
			logrus.WithError(err).Debug("Failed to cache user")
		}
	}
	return &user, nil
}
