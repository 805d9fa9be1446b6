package problems

// Constants for error messages
const (
	ErrProblemNotFound      = "Problem not found"
	ErrFailedFetchProblems  = "Failed to fetch problems"
	ErrFailedAssignProblem  = "Failed to assign problem"
)

// AssignProblemRequest model for assigning a problem to a team
type AssignProblemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}
