package addresscontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lostcause/emberjs-addressbook-api/models"
	"gorm.io/gorm"
)

// POST /addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		// Owner always comes from the token, never the body
		address := models.Address{
			UserID: userID(c),
			Name:   req.Address.Name,
			Email:  req.Address.Email,
		}

		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"address": address})
	}
}
