package problems

import (
	"net/http"

	"api/middleware"
	"api/rules"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// AssignProblem creates a problem and assigns it to the team
// @Summary Assign a problem to a team
// @Description Create a problem authored by the authenticated judge and assign it to the team. A team can hold at most one problem.
// @Tags Problems
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body AssignProblemRequest true "Problem data"
// @Success 201 {object} models.Problem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/{id}/problem [post]
// @Security Bearer
func AssignProblem(c *gin.Context) {
	judge, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req AssignProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	problem, err := problemsService.Assign(c.Param("id"), judge, rules.ProblemSpec{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		response.DomainError(c, err, ErrFailedAssignProblem)
		return
	}

	c.JSON(http.StatusCreated, problem)
}

// GetJudgeProblems retrieves the problems authored by the authenticated judge
// @Summary Get the judge's problems
// @Description Get all problems authored by the authenticated judge
// @Tags Problems
// @Produce json
// @Success 200 {array} models.Problem
// @Failure 500 {object} map[string]string
// @Router /problems [get]
// @Security Bearer
func GetJudgeProblems(c *gin.Context) {
	judge, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	problems, err := problemsService.ListByJudge(judge.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchProblems)
		return
	}
	c.JSON(http.StatusOK, problems)
}

// GetProblem retrieves one problem
// @Summary Get a problem
// @Description Get one problem by ID
// @Tags Problems
// @Produce json
// @Param id path string true "Problem ID"
// @Success 200 {object} models.Problem
// @Failure 404 {object} map[string]string
// @Router /problems/{id} [get]
// @Security Bearer
func GetProblem(c *gin.Context) {
	problem, err := problemsService.Get(c.Param("id"))
	if err != nil {
		response.DomainError(c, err, ErrFailedFetchProblems)
		return
	}
	c.JSON(http.StatusOK, problem)
}
