package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"newsreel/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	sessionCookie = "session_token"
	tokenTTL      = 7 * 24 * time.Hour
)

// Claims carries the user identity inside a bearer token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateJWT issues a signed bearer token for programmatic API access.
func GenerateJWT(userID uint, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// ValidateJWT parses and verifies a token issued by GenerateJWT.
func ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// AuthMiddleware gates routes behind a live browser session.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			abortUnauthorized(c, "No authentication token provided")
			return
		}

		v, exists := c.Get("db")
		if !exists {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not available"})
			c.Abort()
			return
		}
		db := v.(*gorm.DB)

		session, err := lookupSession(db, token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired session")
			return
		}

		c.Set("user_id", session.UserID)
		c.Set("email", session.User.Email)
		c.Set("session", session)
		c.Next()
	}
}

// lookupSession resolves a cookie token to a live session, pruning the
// row if it has lapsed.
func lookupSession(db *gorm.DB, token string) (*models.Session, error) {
	var session models.Session
	if err := db.Preload("User").Where("session_token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	if session.IsExpired() {
		db.Delete(&session)
		return nil, errors.New("session expired")
	}
	session.UpdateLastAccessed(db)
	return &session, nil
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
	c.Abort()
}
