package addresscontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DELETE /addresses/:id
//
// The lookup is owner-scoped like every other verb: deleting an address that
// belongs to someone else is a 404, never a silent success.
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, found := findOwned(db, c)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}

		if err := db.Delete(address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{})
	}
}
