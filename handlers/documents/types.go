package documents

// Constants for error messages
const (
	ErrDocumentNotFound      = "Document not found"
	ErrFailedFetchDocuments  = "Failed to fetch documents"
	ErrFailedCreateDocument  = "Failed to create document"
	ErrFailedCreateUpdate    = "Failed to publish update"
	ErrFailedCreateComment   = "Failed to add comment"
	ErrNotTeamMember         = "You are not a member of this team"
)

// CreateDocumentRequest model for submitting a deliverable
type CreateDocumentRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Format      string  `json:"format"`
	SizeMB      float64 `json:"size_mb"`
	Type        string  `json:"type"`
}

// CreateUpdateRequest model for publishing an update on a document
type CreateUpdateRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateCommentRequest model for a judge comment on a document
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
