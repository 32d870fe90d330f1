package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hvndev/devhub-api/internal/dto"
	apierrors "github.com/hvndev/devhub-api/internal/errors"
	"github.com/hvndev/devhub-api/internal/services"
)

// CommentHandler coordinates comment HTTP handlers.
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListComments lists a log entry's comments, newest first.
func (h *CommentHandler) ListComments(c *gin.Context) {
	logID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rows, err := h.commentService.ListByLog(logID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch comments")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTOs(rows))
}

// CreateComment adds a comment to a log entry.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	logID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type createCommentRequest struct {
		AuthorUserID uint64 `json:"authorUserId" binding:"required"`
		Text         string `json:"texto" binding:"required"`
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "authorUserId and texto are required")
		return
	}

	comment, err := h.commentService.Create(logID, req.AuthorUserID, req.Text)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentDTO(*comment))
}

// UpdateComment rewrites a comment's text. Author-only.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type updateCommentRequest struct {
		ActingUserID uint64 `json:"actingUserId" binding:"required"`
		Text         string `json:"texto" binding:"required"`
	}

	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "actingUserId and texto are required")
		return
	}

	if err := h.commentService.Update(id, req.ActingUserID, req.Text); err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment updated"})
}

// DeleteComment removes a comment. Author-only. The acting user id travels
// in the JSON body, matching the published contract.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type deleteCommentRequest struct {
		ActingUserID uint64 `json:"actingUserId" binding:"required"`
	}

	var req deleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "actingUserId is required")
		return
	}

	if err := h.commentService.Delete(id, req.ActingUserID); err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

func respondCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyComment):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, "Comment not found")
	case errors.Is(err, services.ErrLogNotFound):
		apierrors.NotFound(c, "Log not found")
	default:
		apierrors.InternalError(c, "")
	}
}
