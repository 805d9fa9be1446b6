package evaluations

import (
	"net/http"

	"api/middleware"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateEvaluation records the authenticated judge's score for a team
// @Summary Evaluate a team
// @Description Record a score between 0 and 10 for the team. The team must have published at least one update.
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body CreateEvaluationRequest true "Score and feedback"
// @Success 201 {object} models.Evaluation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/{id}/evaluations [post]
// @Security Bearer
func CreateEvaluation(c *gin.Context) {
	judge, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	eval, err := evaluationsService.Create(c.Request.Context(), c.Param("id"), judge, *req.Score, req.Feedback)
	if err != nil {
		response.DomainError(c, err, ErrFailedCreateEvaluation)
		return
	}

	c.JSON(http.StatusCreated, eval)
}

// GetTeamEvaluations retrieves the evaluations recorded for a team
// @Summary Get a team's evaluations
// @Description Get all evaluations recorded for the team in submission order
// @Tags Evaluations
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} models.Evaluation
// @Failure 500 {object} map[string]string
// @Router /teams/{id}/evaluations [get]
// @Security Bearer
func GetTeamEvaluations(c *gin.Context) {
	evals, err := evaluationsService.ListByTeam(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchEvaluations)
		return
	}
	c.JSON(http.StatusOK, evals)
}
