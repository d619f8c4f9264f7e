package Controllers

import (
	"net/http"
	"time"

	"github.com/kathanshah28/clinic-management/Models"
	"github.com/kathanshah28/clinic-management/SSE"

	"github.com/gin-gonic/gin"
)

func FetchPatients(c *gin.Context) {
	values, err := Models.Sheet.GetAllRows(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	patients := make([]Models.Patient, 0)
	if len(values) > 1 {
		headers := values[0]
		for _, row := range values[1:] {
			patients = append(patients, Models.MapRow(headers, row))
		}
	}
	c.JSON(http.StatusOK, patients)
}

func FetchTodayPatients(c *gin.Context) {
	values, err := Models.Sheet.GetAllRows(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to load data"})
		return
	}

	todayPatients := make([]Models.Patient, 0)
	if len(values) > 1 {
		headers := values[0]
		now := time.Now()
		for _, row := range values[1:] {
			patient := Models.MapRow(headers, row)
			if !Models.VisitsToday(patient[Models.HeaderVisitDays], now) {
				continue
			}

			if patient[Models.HeaderVisitCount] == "" {
				patient[Models.HeaderVisitCount] = "0"
			}
			// The front end expects the identifier under Patient_ID.
			patient[Models.PatientIDKey] = patient[Models.HeaderPatientID]

			todayPatients = append(todayPatients, patient)
		}
	}
	c.JSON(http.StatusOK, todayPatients)
}

func CreatePatient(c *gin.Context) {
	var input Models.NewPatient

	// Bind JSON input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := Models.Sheet.AppendRow(c.Request.Context(), input.Row()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
