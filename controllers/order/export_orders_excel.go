package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/nohsangwoo/smart-wholesale-platform-sub001/mockdata"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(book *mockdata.OrderBook) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Status", "OrderDate", "Product", "Platform",
			"OriginalPrice", "EstimatedPrice", "Fees", "Tax", "ShippingCost",
			"Recipient", "Address", "Carrier", "TrackingNumber",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range book.List() {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.OrderDate.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.Product.Title)
			row.AddCell().SetValue(o.Product.Platform)
			row.AddCell().SetValue(o.Product.OriginalPrice)
			row.AddCell().SetValue(o.Product.EstimatedPrice)
			row.AddCell().SetValue(o.Product.Fees)
			row.AddCell().SetValue(o.Product.Tax)
			row.AddCell().SetValue(o.Product.ShippingCost)
			row.AddCell().SetValue(o.Shipping.Recipient)
			row.AddCell().SetValue(o.Shipping.Address)
			row.AddCell().SetValue(o.Shipping.Carrier)
			row.AddCell().SetValue(o.Shipping.TrackingNumber)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write Excel file"})
			return
		}
	}
}
