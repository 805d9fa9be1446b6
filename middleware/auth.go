package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"api/config"
	"api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const userContextKey = "user"

var ErrNoUserInContext = errors.New("no authenticated user in request context")

// Auth resolves JWT bearer tokens and cookies into users
type Auth struct {
	DB *gorm.DB
}

func NewAuth(db *gorm.DB) *Auth {
	return &Auth{DB: db}
}

// GenerateToken creates a signed JWT for the given user ID
func GenerateToken(userID string, rememberMe bool) (string, error) {
	lifetime := 24 * time.Hour
	if rememberMe {
		lifetime = 30 * 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(lifetime).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// parseToken validates a signed token and returns the user ID it carries
func parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("invalid token claims")
	}
	return userID, nil
}

// tokenFromRequest reads the auth token from the cookie or the
// Authorization header, cookie first.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// Middleware authenticates the request and stores the user in the context
func (a *Auth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		userID, err := parseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user models.User
		if err := a.DB.First(&user, "id = ?", userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// RequireRole rejects authenticated users whose role is not in the allowed set
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromRequest(c)
		if err != nil {
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
	}
}

// GetUserFromRequest returns the authenticated user stored by Middleware.
// Responds with 401 and aborts when the user is missing, so handlers can
// simply return on error.
func GetUserFromRequest(c *gin.Context) (*models.User, error) {
	value, exists := c.Get(userContextKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, ErrNoUserInContext
	}
	user, ok := value.(*models.User)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, ErrNoUserInContext
	}
	return user, nil
}
