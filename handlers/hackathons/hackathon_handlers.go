package hackathons

import (
	"net/http"
	"time"

	"api/middleware"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetHackathons retrieves all hackathons
// @Summary Get all hackathons
// @Description Get every hackathon, newest first
// @Tags Hackathons
// @Produce json
// @Success 200 {array} models.Hackathon
// @Failure 500 {object} map[string]string
// @Router /hackathons [get]
func GetHackathons(c *gin.Context) {
	hackathons, err := hackathonsService.List()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchHackathons)
		return
	}
	c.JSON(http.StatusOK, hackathons)
}

// GetOpenHackathons retrieves the hackathons still accepting registrations
// @Summary Get open hackathons
// @Description Get the hackathons whose registration window is open today
// @Tags Hackathons
// @Produce json
// @Success 200 {array} models.Hackathon
// @Failure 500 {object} map[string]string
// @Router /hackathons/open [get]
func GetOpenHackathons(c *gin.Context) {
	hackathons, err := hackathonsService.ListOpen(time.Now())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchHackathons)
		return
	}
	c.JSON(http.StatusOK, hackathons)
}

// GetHackathon retrieves one hackathon with its organizer and teams
// @Summary Get a hackathon
// @Description Get one hackathon by ID with its organizer and teams
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} models.Hackathon
// @Failure 404 {object} map[string]string
// @Router /hackathons/{id} [get]
func GetHackathon(c *gin.Context) {
	hackathon, err := hackathonsService.Get(c.Param("id"))
	if err != nil {
		response.DomainError(c, err, ErrFailedFetchHackathons)
		return
	}
	c.JSON(http.StatusOK, hackathon)
}

// CreateHackathon creates a new hackathon owned by the authenticated organizer
// @Summary Create a hackathon
// @Description Create a new hackathon. Organizer role required.
// @Tags Hackathons
// @Accept json
// @Produce json
// @Param request body CreateHackathonRequest true "Hackathon data"
// @Success 201 {object} models.Hackathon
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /hackathons [post]
// @Security Bearer
func CreateHackathon(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req CreateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	hackathon := models.Hackathon{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := hackathonsService.Create(&hackathon, user); err != nil {
		response.DomainError(c, err, ErrFailedCreateHackathon)
		return
	}

	c.JSON(http.StatusCreated, hackathon)
}

// DeleteHackathon removes a hackathon owned by the authenticated organizer
// @Summary Delete a hackathon
// @Description Delete a hackathon. Only the owning organizer may do so.
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hackathons/{id} [delete]
// @Security Bearer
func DeleteHackathon(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	if err := hackathonsService.Delete(c.Param("id"), user); err != nil {
		response.DomainError(c, err, ErrFailedDeleteHackathon)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hackathon deleted"})
}
