package response

import (
	"net/http"

	"api/models"

	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Success sends a standardized success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// ValidationError sends a response for validation errors
func ValidationError(c *gin.Context, errors map[string]string) {
	c.JSON(400, gin.H{"errors": errors})
}

// DomainError maps a domain error to its HTTP status and sends it.
// Unknown errors are reported as 500 with the fallback message so
// storage details never leak to clients.
func DomainError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback

	switch models.KindOf(err) {
	case models.KindValidation:
		status = http.StatusBadRequest
		message = err.Error()
	case models.KindNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case models.KindRegistrationClosed:
		status = http.StatusForbidden
		message = err.Error()
	case models.KindCapacityExceeded,
		models.KindTeamAlreadyHasProblem,
		models.KindProblemRequired,
		models.KindUpdateRequired,
		models.KindCrossEventMembership,
		models.KindCrossEventAssignment,
		models.KindCrossEventComment,
		models.KindCrossEventEvaluation:
		status = http.StatusConflict
		message = err.Error()
	}

	c.JSON(status, gin.H{"error": message})
}
