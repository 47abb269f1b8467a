package addresscontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAddressByID returns a single address owned by the caller.
// URL param: /addresses/:id
//
// A miss answers 200 with an empty object, not a 404 — clients of the
// original API branch on the payload shape and depend on that.
func GetAddressByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, found := findOwned(db, c)
		if !found {
			c.JSON(http.StatusOK, gin.H{})
			return
		}

		c.JSON(http.StatusOK, gin.H{"address": address})
	}
}
