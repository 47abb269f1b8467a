package addresscontroller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lostcause/emberjs-addressbook-api/models"
	"gorm.io/gorm"
)

type addressInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type addressRequest struct {
	Address addressInput `json:"address"`
}

// userID returns the authenticated caller's id set by the auth middleware.
func userID(c *gin.Context) string {
	id, _ := c.Get("user_id")
	s, _ := id.(string)
	return s
}

// findOwned resolves the :id URL param against the caller's own addresses.
// Every verb that touches a single record goes through here, so ownership is
// enforced in exactly one place. A malformed or foreign id is simply not found.
func findOwned(db *gorm.DB, c *gin.Context) (*models.Address, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, false
	}

	var address models.Address
	if err := db.Where("id = ? AND user_id = ?", id, userID(c)).First(&address).Error; err != nil {
		return nil, false
	}
	return &address, true
}
