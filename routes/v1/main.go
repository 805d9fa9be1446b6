package v1

import (
	"api/handlers/auth"
	"api/handlers/documents"
	"api/handlers/evaluations"
	"api/handlers/hackathons"
	"api/handlers/problems"
	"api/handlers/teams"
	"api/middleware"
	"api/realtime"
	"api/services"

	"github.com/gin-gonic/gin"
)

// Deps carries the shared infrastructure every handler package receives
type Deps struct {
	Auth          *middleware.Auth
	LoginThrottle *middleware.LoginThrottle
	Hub           *realtime.Hub

	Users        *services.Users
	Hackathons   *services.Hackathons
	Teams        *services.Teams
	Problems     *services.Problems
	Documents    *services.Documents
	Evaluations  *services.Evaluations
	Leaderboards *services.Leaderboards
}

// Register the endpoints for the v1 API
func Register(r *gin.Engine, deps *Deps) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1, deps.Users, deps.Auth, deps.LoginThrottle)
	hackathons.RegisterRoutes(v1, deps.Auth, deps.Hackathons, deps.Leaderboards, deps.Hub)
	teams.RegisterRoutes(v1, deps.Auth, deps.Teams)
	problems.RegisterRoutes(v1, deps.Auth, deps.Problems)
	documents.RegisterRoutes(v1, deps.Auth, deps.Documents)
	evaluations.RegisterRoutes(v1, deps.Auth, deps.Evaluations)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
