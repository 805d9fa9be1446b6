package auth

import (
	"net/http"
	"time"

	"api/middleware"
	"api/models"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Login authenticates a user with email and password
// @Summary Login
// @Description Authenticate with email and password, returns a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if blocked, _ := loginThrottle.Blocked(req.Email); blocked {
		response.Error(c, http.StatusTooManyRequests, ErrTooManyAttempts)
		return
	}

	user, err := usersService.FindByEmail(req.Email)
	if err != nil {
		loginThrottle.RecordFailure(req.Email)
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		loginThrottle.RecordFailure(req.Email)
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}
	loginThrottle.Reset(req.Email)

	token, err := middleware.GenerateToken(user.ID, req.RememberMe)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}
	setCookieToken(c, token, req.RememberMe)

	c.JSON(http.StatusOK, AuthResponse{
		Token:       token,
		UserID:      user.ID,
		Email:       user.Email,
		Firstname:   user.Firstname,
		Lastname:    user.Lastname,
		Role:        user.Role,
		HackathonID: user.HackathonID,
		TeamID:      user.TeamID,
	})
}

// RegisterUser creates a new account
// @Summary Register
// @Description Create a new competitor, judge or organizer account. Competitors and judges may pick a hackathon while its registration window is open.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user := models.User{
		Email:     req.Email,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Role:      req.Role,
	}

	if err := usersService.Register(&user, req.Password, req.HackathonID, time.Now()); err != nil {
		response.DomainError(c, err, ErrUserCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// CheckAuth returns the authenticated user's account
// @Summary Check authentication
// @Description Return the account behind the provided token
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChooseHackathon registers the authenticated competitor or judge for a hackathon
// @Summary Choose a hackathon
// @Description Register the authenticated competitor or judge for a hackathon while the registration window is open
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ChooseHackathonRequest true "Hackathon choice"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/hackathon [post]
// @Security Bearer
func ChooseHackathon(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req ChooseHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := usersService.ChooseHackathon(user, req.HackathonID, time.Now()); err != nil {
		response.DomainError(c, err, "Failed to register for hackathon")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout clears the authentication cookie
// @Summary Logout
// @Description Clear the authentication cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": ErrLogoutSuccess})
}
