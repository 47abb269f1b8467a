package routes

import (
	"github.com/gin-gonic/gin"
	addressControllers "github.com/lostcause/emberjs-addressbook-api/controllers/address"
	"github.com/lostcause/emberjs-addressbook-api/middleware"
	"gorm.io/gorm"
)

// SetupAddressRoutes registers all "/addresses/*" endpoints. Requires JWT middleware.
func SetupAddressRoutes(r *gin.Engine, db *gorm.DB) {
	addressGroup := r.Group("/addresses")
	addressGroup.Use(middleware.ValidateToken)
	{
		addressGroup.GET("", addressControllers.GetAddresses(db))                  // GET    /addresses
		addressGroup.POST("", addressControllers.CreateAddress(db))                // POST   /addresses
		addressGroup.GET("/export", addressControllers.ExportAddressesToExcel(db)) // GET    /addresses/export
		addressGroup.GET("/:id", addressControllers.GetAddressByID(db))            // GET    /addresses/:id
		addressGroup.PUT("/:id", addressControllers.UpdateAddress(db))             // PUT    /addresses/:id
		addressGroup.DELETE("/:id", addressControllers.DeleteAddress(db))          // DELETE /addresses/:id
	}
}
