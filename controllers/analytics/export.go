package analyticsControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Vairous86/bbbeeedddooo/models"
)

func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "ServiceID", "ServiceName", "Platform", "AccountURL",
			"Quantity", "WhatsappNumber", "Price", "Currency",
			"PaymentMethod", "PaymentScreenshot", "Status", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.ServiceID)
			row.AddCell().SetValue(o.ServiceName)
			row.AddCell().SetValue(o.Platform)
			row.AddCell().SetValue(o.AccountURL)
			row.AddCell().SetValue(o.Quantity)
			row.AddCell().SetValue(o.WhatsappNumber)
			row.AddCell().SetValue(o.Price)
			row.AddCell().SetValue(o.Currency)
			row.AddCell().SetValue(o.PaymentMethod)
			if o.PaymentScreenshot != nil {
				row.AddCell().SetValue(*o.PaymentScreenshot)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

func ExportVisitsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var visits []models.VisitLog
		if err := db.Order("created_at DESC").Find(&visits).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch visits"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Visits")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "IPAddress", "Country", "City", "PageURL",
			"UserAgent", "ReferrerSource", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, v := range visits {
			row := sheet.AddRow()
			row.AddCell().SetValue(v.ID)
			row.AddCell().SetValue(v.IPAddress)
			row.AddCell().SetValue(v.Country)
			row.AddCell().SetValue(v.City)
			row.AddCell().SetValue(v.PageURL)
			row.AddCell().SetValue(v.UserAgent)
			row.AddCell().SetValue(v.ReferrerSource)
			row.AddCell().SetValue(v.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=visits.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
