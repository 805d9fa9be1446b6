package teams

// Constants for error messages
const (
	ErrTeamNotFound      = "Team not found"
	ErrFailedFetchTeams  = "Failed to fetch teams"
	ErrFailedCreateTeam  = "Failed to create team"
	ErrFailedJoinTeam    = "Failed to join team"
	ErrFailedLeaveTeam   = "Failed to leave team"
	ErrFailedDeleteTeam  = "Failed to delete team"
	ErrNotRegisteredHere = "You are not registered for this hackathon"
)

// CreateTeamRequest model for creating a team
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}
