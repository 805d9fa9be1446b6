package teams

import (
	"net/http"

	"api/middleware"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetHackathonTeams retrieves all teams of a hackathon
// @Summary Get a hackathon's teams
// @Description Get all teams of the hackathon in creation order
// @Tags Teams
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {array} models.Team
// @Failure 500 {object} map[string]string
// @Router /hackathons/{id}/teams [get]
func GetHackathonTeams(c *gin.Context) {
	teams, err := teamsService.List(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchTeams)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetAvailableTeams retrieves the hackathon's teams that still have room
// @Summary Get joinable teams
// @Description Get the hackathon's teams with fewer than the maximum number of competitors
// @Tags Teams
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {array} models.Team
// @Failure 500 {object} map[string]string
// @Router /hackathons/{id}/teams/available [get]
func GetAvailableTeams(c *gin.Context) {
	teams, err := teamsService.ListAvailable(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchTeams)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam retrieves one team with its associations
// @Summary Get a team
// @Description Get one team by ID with competitors, problem, documents, updates and evaluations
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [get]
// @Security Bearer
func GetTeam(c *gin.Context) {
	team, err := teamsService.Get(c.Param("id"))
	if err != nil {
		response.DomainError(c, err, ErrFailedFetchTeams)
		return
	}
	c.JSON(http.StatusOK, team)
}

// CreateTeam creates a new team in the competitor's hackathon
// @Summary Create a team
// @Description Create a new team. The competitor must be registered for the hackathon.
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID"
// @Param request body CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /hackathons/{id}/teams [post]
// @Security Bearer
func CreateTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	hackathonID := c.Param("id")
	if !user.SameHackathon(hackathonID) {
		response.Error(c, http.StatusForbidden, ErrNotRegisteredHere)
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	team := models.Team{Name: req.Name}
	if err := teamsService.Create(&team, hackathonID); err != nil {
		response.DomainError(c, err, ErrFailedCreateTeam)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// JoinTeam adds the authenticated competitor to the team
// @Summary Join a team
// @Description Join a team of the competitor's hackathon. Full teams reject the join.
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/{id}/members [post]
// @Security Bearer
func JoinTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	team, err := teamsService.Join(c.Param("id"), user)
	if err != nil {
		response.DomainError(c, err, ErrFailedJoinTeam)
		return
	}

	c.JSON(http.StatusOK, team)
}

// LeaveTeam removes the authenticated competitor from the team
// @Summary Leave a team
// @Description Leave the team. Leaving a team the competitor is not in is a no-op.
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/members [delete]
// @Security Bearer
func LeaveTeam(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if err := teamsService.Leave(c.Param("id"), user); err != nil {
		response.DomainError(c, err, ErrFailedLeaveTeam)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left the team"})
}

// DeleteTeam removes a team and detaches its members
// @Summary Delete a team
// @Description Delete a team. Organizer role required.
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [delete]
// @Security Bearer
func DeleteTeam(c *gin.Context) {
	if err := teamsService.Delete(c.Param("id")); err != nil {
		response.DomainError(c, err, ErrFailedDeleteTeam)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted"})
}
