package addresscontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lostcause/emberjs-addressbook-api/models"
	"gorm.io/gorm"
)

// GET /addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Initialized so an empty book serializes as [] rather than null
		addresses := []models.Address{}

		if err := db.Where("user_id = ?", userID(c)).Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"address": addresses})
	}
}
