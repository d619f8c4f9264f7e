package Controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Static page handlers for the browser front end. The pages fetch their data
// from the JSON API client-side, so nothing is injected here.

func IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func TodayPage(c *gin.Context) {
	c.HTML(http.StatusOK, "today_patients.html", nil)
}

func AddPatientPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_patients.html", nil)
}

func HistoryPage(c *gin.Context) {
	c.HTML(http.StatusOK, "all_patients.html", nil)
}
