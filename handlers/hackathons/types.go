package hackathons

import "time"

// Constants for error messages
const (
	ErrHackathonNotFound      = "Hackathon not found"
	ErrFailedFetchHackathons  = "Failed to fetch hackathons"
	ErrFailedCreateHackathon  = "Failed to create hackathon"
	ErrFailedDeleteHackathon  = "Failed to delete hackathon"
	ErrFailedFetchLeaderboard = "Failed to compute leaderboard"
	ErrFailedExport           = "Failed to export leaderboard"
)

// CreateHackathonRequest model for creating a hackathon
type CreateHackathonRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate     time.Time `json:"end_date" binding:"required" time_format:"2006-01-02"`
}
