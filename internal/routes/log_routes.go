package routes

import (
	"eld_logbook/internal/controllers"

	"github.com/gin-gonic/gin"
)

func LogRoutes(r *gin.Engine) {
	logs := r.Group("/api/logs")
	{
		logs.POST("/daily", controllers.BuildDailyLogs)
		logs.POST("/sheet", controllers.RenderLogSheet)
	}
}
