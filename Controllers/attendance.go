package Controllers

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/kathanshah28/clinic-management/Models"
	"github.com/kathanshah28/clinic-management/SSE"

	"github.com/gin-gonic/gin"
)

// attendMu serializes read-then-write visit count updates within this
// process. Concurrent confirms from separate processes can still race on the
// same cell.
var attendMu sync.Mutex

func MarkAttendance(c *gin.Context) {
	patientID := c.Param("id")

	var input struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if strings.ToLower(input.Action) != "confirm" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	attendMu.Lock()
	defer attendMu.Unlock()

	values, err := Models.Sheet.GetAllRows(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if len(values) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "not found", "message": "No data in sheet"})
		return
	}

	headers := values[0]
	idCol := Models.HeaderIndex(headers, Models.HeaderPatientID)
	countCol := Models.HeaderIndex(headers, Models.HeaderVisitCount)
	if idCol < 0 || countCol < 0 {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Missing required column headers in sheet",
		})
		return
	}

	// Data rows start at absolute sheet row 2; only the first matching row
	// is updated.
	for i, row := range values[1:] {
		if idCol >= len(row) || row[idCol] != patientID {
			continue
		}

		count := 0
		if countCol < len(row) {
			if n, err := strconv.Atoi(strings.TrimSpace(row[countCol])); err == nil && n >= 0 {
				count = n
			}
		}

		sheetRow := i + 2
		if err := Models.Sheet.UpdateCell(c.Request.Context(), countCol, sheetRow, strconv.Itoa(count+1)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
			return
		}

		SSE.Broadcaster.Broadcast("refresh")
		c.JSON(http.StatusOK, gin.H{"status": "updated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "not found"})
}
