package auth

import (
	"api/middleware"
	"api/services"

	"github.com/gin-gonic/gin"
)

var (
	usersService  *services.Users
	loginThrottle *middleware.LoginThrottle
)

// RegisterRoutes registers all routes related to authentication
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup, users *services.Users, authMW *middleware.Auth, throttle *middleware.LoginThrottle) {
	usersService = users
	loginThrottle = throttle

	auth := r.Group("/auth")
	{
		auth.POST("/login", Login)
		auth.POST("/register", RegisterUser)
		auth.POST("/logout", Logout)

		protected := auth.Group("")
		protected.Use(authMW.Middleware())
		{
			protected.GET("/check", CheckAuth)
			protected.POST("/hackathon", ChooseHackathon)
		}
	}
}
