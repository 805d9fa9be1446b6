package hackathons

import (
	"api/middleware"
	"api/models"
	"api/realtime"
	"api/services"

	"github.com/gin-gonic/gin"
)

var (
	hackathonsService *services.Hackathons
	boardsService     *services.Leaderboards
	hub               *realtime.Hub
)

// RegisterRoutes registers all routes related to hackathons
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, authMW *middleware.Auth, h *services.Hackathons, boards *services.Leaderboards, realtimeHub *realtime.Hub) {
	hackathonsService = h
	boardsService = boards
	hub = realtimeHub

	// Public routes: listings, leaderboards and the realtime feed
	r.GET("/hackathons", GetHackathons)
	r.GET("/hackathons/open", GetOpenHackathons)
	r.GET("/hackathons/:id", GetHackathon)
	r.GET("/hackathons/:id/leaderboard", GetLeaderboard)
	r.GET("/hackathons/:id/ws", HackathonWebSocket)

	protected := r.Group("/hackathons")
	protected.Use(authMW.Middleware())
	{
		protected.POST("/", middleware.RequireRole(models.RoleOrganizer), CreateHackathon)
		protected.DELETE("/:id", middleware.RequireRole(models.RoleOrganizer), DeleteHackathon)
		protected.GET("/:id/leaderboard/export", middleware.RequireRole(models.RoleOrganizer, models.RoleJudge), ExportLeaderboardExcel)
	}
}
