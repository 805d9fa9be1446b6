package problems

import (
	"api/middleware"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
)

var problemsService *services.Problems

// RegisterRoutes registers all routes related to problems
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, authMW *middleware.Auth, p *services.Problems) {
	problemsService = p

	protected := r.Group("")
	protected.Use(authMW.Middleware())
	{
		protected.POST("/teams/:id/problem", middleware.RequireRole(models.RoleJudge), AssignProblem)
		protected.GET("/problems", middleware.RequireRole(models.RoleJudge), GetJudgeProblems)
		protected.GET("/problems/:id", GetProblem)
	}
}
