package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lostcause/emberjs-addressbook-api/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public registration and login endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register", auth.RegisterUser(db)) // POST /register
	r.POST("/login", auth.LoginUser(db))       // POST /login
}
