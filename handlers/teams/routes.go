package teams

import (
	"api/middleware"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
)

var teamsService *services.Teams

// RegisterRoutes registers all routes related to teams
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, authMW *middleware.Auth, t *services.Teams) {
	teamsService = t

	// Public listings per hackathon
	r.GET("/hackathons/:id/teams", GetHackathonTeams)
	r.GET("/hackathons/:id/teams/available", GetAvailableTeams)

	protected := r.Group("")
	protected.Use(authMW.Middleware())
	{
		protected.POST("/hackathons/:id/teams", middleware.RequireRole(models.RoleCompetitor), CreateTeam)

		teams := protected.Group("/teams")
		{
			teams.GET("/:id", GetTeam)
			teams.POST("/:id/members", middleware.RequireRole(models.RoleCompetitor), JoinTeam)
			teams.DELETE("/:id/members", middleware.RequireRole(models.RoleCompetitor), LeaveTeam)
			teams.DELETE("/:id", middleware.RequireRole(models.RoleOrganizer), DeleteTeam)
		}
	}
}
