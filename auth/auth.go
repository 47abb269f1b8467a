package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lostcause/emberjs-addressbook-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerRequest accepts both the current top-level shape and the legacy
// nested {"user": {...}} shape some clients still send.
type registerRequest struct {
	Email    string       `json:"email"`
	Password string       `json:"password"`
	User     *credentials `json:"user"`
}

// normalize folds the legacy nested shape into plain credentials. Top-level
// fields win when both are present.
func (r *registerRequest) normalize() credentials {
	if r.Email == "" && r.User != nil {
		return credentials{Email: r.User.Email, Password: r.User.Password}
	}
	return credentials{Email: r.Email, Password: r.Password}
}

// POST /register
func RegisterUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		creds := req.normalize()

		hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			ID:       uuid.NewString(),
			Email:    creds.Email,
			Password: string(hash),
		}

		// The unique index on email surfaces duplicates here; the client only
		// needs the conflict, not the driver error.
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// POST /login
func LoginUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No such user/password"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", creds.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No such user/password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No such user/password"})
			return
		}

		token, err := IssueToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could_not_create_token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// IssueToken signs a bearer token carrying the user id, valid for 24 hours.
func IssueToken(userID string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
