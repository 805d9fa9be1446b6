package evaluations

import (
	"api/middleware"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
)

var evaluationsService *services.Evaluations

// RegisterRoutes registers all routes related to evaluations
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, authMW *middleware.Auth, e *services.Evaluations) {
	evaluationsService = e

	protected := r.Group("/teams/:id/evaluations")
	protected.Use(authMW.Middleware())
	{
		protected.POST("", middleware.RequireRole(models.RoleJudge), CreateEvaluation)
		protected.GET("", GetTeamEvaluations)
	}
}
