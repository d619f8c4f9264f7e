package Routes

import (
	"github.com/kathanshah28/clinic-management/Controllers"
	"github.com/kathanshah28/clinic-management/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	router.LoadHTMLGlob("templates/*.html")

	// Patient API routes
	api := router.Group("/api")
	{
		api.GET("/patients", Controllers.FetchPatients)
		api.GET("/patients/today", Controllers.FetchTodayPatients)
		api.GET("/patients/export", Controllers.ExportPatientsExcel)
		api.POST("/patients", Controllers.CreatePatient)
		api.PUT("/patients/:id/attend", Controllers.MarkAttendance)

		// SSE (Server-Sent Events) route
		api.GET("/RequestSSE", SSE.RequestSSE)
	}

	// Front end pages
	router.GET("/", Controllers.IndexPage)
	router.GET("/today", Controllers.TodayPage)
	router.GET("/add", Controllers.AddPatientPage)
	router.GET("/history", Controllers.HistoryPage)
}
