package documents

import (
	"net/http"

	"api/middleware"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateDocument submits a deliverable for the team
// @Summary Submit a document
// @Description Submit a deliverable for the team. The team must already hold an assigned problem.
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body CreateDocumentRequest true "Document data"
// @Success 201 {object} models.Document
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/{id}/documents [post]
// @Security Bearer
func CreateDocument(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	teamID := c.Param("id")
	if user.TeamID == nil || *user.TeamID != teamID {
		response.Error(c, http.StatusForbidden, ErrNotTeamMember)
		return
	}

	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	doc := models.Document{
		Title:       req.Title,
		Description: req.Description,
		Format:      req.Format,
		SizeMB:      req.SizeMB,
		Type:        req.Type,
	}

	if err := documentsService.Create(&doc, teamID); err != nil {
		response.DomainError(c, err, ErrFailedCreateDocument)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// GetTeamDocuments retrieves the team's documents
// @Summary Get a team's documents
// @Description Get the team's documents with their updates and comments
// @Tags Documents
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} models.Document
// @Failure 500 {object} map[string]string
// @Router /teams/{id}/documents [get]
// @Security Bearer
func GetTeamDocuments(c *gin.Context) {
	docs, err := documentsService.ListByTeam(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchDocuments)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetDocument retrieves one document
// @Summary Get a document
// @Description Get one document by ID with its updates and comments
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} map[string]string
// @Router /documents/{id} [get]
// @Security Bearer
func GetDocument(c *gin.Context) {
	doc, err := documentsService.Get(c.Param("id"))
	if err != nil {
		response.DomainError(c, err, ErrFailedFetchDocuments)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// CreateUpdate publishes an update on a document
// @Summary Publish an update
// @Description Publish an update on one of the team's documents. Only team members can publish.
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body CreateUpdateRequest true "Update content"
// @Success 201 {object} models.Update
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /documents/{id}/updates [post]
// @Security Bearer
func CreateUpdate(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req CreateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	update, err := documentsService.AddUpdate(c.Param("id"), user, req.Content)
	if err != nil {
		response.DomainError(c, err, ErrFailedCreateUpdate)
		return
	}

	c.JSON(http.StatusCreated, update)
}

// GetDocumentComments retrieves the judge comments on a document
// @Summary Get a document's comments
// @Description Get the judge comments recorded on the document in submission order
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {array} models.Comment
// @Failure 500 {object} map[string]string
// @Router /documents/{id}/comments [get]
// @Security Bearer
func GetDocumentComments(c *gin.Context) {
	comments, err := documentsService.ListComments(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchDocuments)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment records a judge comment on a document
// @Summary Comment a document
// @Description Add a judge comment to a document. Documents without updates cannot be commented.
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body CreateCommentRequest true "Comment text"
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /documents/{id}/comments [post]
// @Security Bearer
func CreateComment(c *gin.Context) {
	judge, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := documentsService.AddComment(c.Param("id"), judge, req.Text)
	if err != nil {
		response.DomainError(c, err, ErrFailedCreateComment)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
