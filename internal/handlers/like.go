package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/hvndev/devhub-api/internal/errors"
	"github.com/hvndev/devhub-api/internal/services"
)

// LikeHandler coordinates like HTTP handlers.
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

type likeRequest struct {
	LogID  uint64 `json:"logId" binding:"required"`
	UserID uint64 `json:"userId" binding:"required"`
}

// CreateLike records a like. A duplicate pair is a 409, distinct from any
// other failure.
func (h *LikeHandler) CreateLike(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "logId and userId are required")
		return
	}

	if err := h.likeService.Like(req.LogID, req.UserID); err != nil {
		respondLikeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Like added"})
}

// DeleteLike removes a like identified by query parameters.
func (h *LikeHandler) DeleteLike(c *gin.Context) {
	logID, err1 := strconv.ParseUint(c.Query("logId"), 10, 64)
	userID, err2 := strconv.ParseUint(c.Query("userId"), 10, 64)
	if err1 != nil || err2 != nil {
		apierrors.BadRequest(c, "logId and userId are required")
		return
	}

	if err := h.likeService.Unlike(logID, userID); err != nil {
		respondLikeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Like removed"})
}

// ToggleLike atomically flips the like state and reports the result.
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "logId and userId are required")
		return
	}

	liked, err := h.likeService.Toggle(req.LogID, req.UserID)
	if err != nil {
		respondLikeError(c, err)
		return
	}

	message := "Like removed"
	if liked {
		message = "Like added"
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "message": message})
}

func respondLikeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAlreadyLiked):
		apierrors.Conflict(c, "Already liked")
	case errors.Is(err, services.ErrLikeNotFound):
		apierrors.NotFound(c, "Like not found")
	case errors.Is(err, services.ErrLogNotFound):
		apierrors.NotFound(c, "Log not found")
	default:
		apierrors.InternalError(c, "")
	}
}
