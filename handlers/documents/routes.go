package documents

import (
	"api/middleware"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
)

var documentsService *services.Documents

// RegisterRoutes registers all routes related to documents
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, authMW *middleware.Auth, d *services.Documents) {
	documentsService = d

	protected := r.Group("")
	protected.Use(authMW.Middleware())
	{
		protected.POST("/teams/:id/documents", middleware.RequireRole(models.RoleCompetitor), CreateDocument)
		protected.GET("/teams/:id/documents", GetTeamDocuments)
		protected.GET("/documents/:id", GetDocument)
		protected.POST("/documents/:id/updates", middleware.RequireRole(models.RoleCompetitor), CreateUpdate)
		protected.GET("/documents/:id/comments", GetDocumentComments)
		protected.POST("/documents/:id/comments", middleware.RequireRole(models.RoleJudge), CreateComment)
	}
}
