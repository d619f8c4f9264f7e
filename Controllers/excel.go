package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kathanshah28/clinic-management/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

// ExportPatientsExcel downloads the whole patient sheet as an .xlsx file,
// header row included, in the sheet's own column order.
func ExportPatientsExcel(c *gin.Context) {
	values, err := Models.Sheet.GetAllRows(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	file := excelize.NewFile()
	sheet := "Patients"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")

	for rowIndex, row := range values {
		for colIndex, cell := range row {
			axis := fmt.Sprintf("%s%d", Models.ColumnLetter(colIndex), rowIndex+1)
			file.SetCellValue(sheet, axis, cell)
		}
	}

	var filename string = fmt.Sprintf("./Patients.xlsx")
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}
