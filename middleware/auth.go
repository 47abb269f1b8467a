package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthFailedMessage is the single 401 body for every token failure. Clients
// disambiguate it from the login errors, so the text must stay stable.
const AuthFailedMessage = "Failed to authenticate because of bad credentials or an invalid authorization header."

// ValidateToken gates a route group behind a bearer token. On success the
// verified user id is stored in the context under "user_id"; handlers never
// touch the token themselves.
func ValidateToken(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		abortUnauthorized(c)
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but our HMAC scheme
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		abortUnauthorized(c)
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		abortUnauthorized(c)
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		abortUnauthorized(c)
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": AuthFailedMessage})
	c.Abort()
}
