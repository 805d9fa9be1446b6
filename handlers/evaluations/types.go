package evaluations

// Constants for error messages
const (
	ErrFailedFetchEvaluations = "Failed to fetch evaluations"
	ErrFailedCreateEvaluation = "Failed to record evaluation"
)

// CreateEvaluationRequest model for scoring a team
type CreateEvaluationRequest struct {
	Score    *int   `json:"score" binding:"required"`
	Feedback string `json:"feedback"`
}
