package addresscontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lostcause/emberjs-addressbook-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /addresses/export
func ExportAddressesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addresses []models.Address
		if err := db.Where("user_id = ?", userID(c)).Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Addresses")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{"ID", "Name", "Email", "CreatedAt", "UpdatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, a := range addresses {
			row := sheet.AddRow()
			row.AddCell().SetValue(a.ID)
			row.AddCell().SetValue(a.Name)
			row.AddCell().SetValue(a.Email)
			row.AddCell().SetValue(a.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(a.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=addresses.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
