package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hvndev/devhub-api/internal/dto"
	apierrors "github.com/hvndev/devhub-api/internal/errors"
	"github.com/hvndev/devhub-api/internal/repository"
	"github.com/hvndev/devhub-api/internal/services"
	"github.com/hvndev/devhub-api/internal/utils"
)

// LogHandler coordinates log entry HTTP handlers.
type LogHandler struct {
	logService *services.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService *services.LogService) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

// logRequest carries a log entry's writable fields. The numeric fields bind
// as raw JSON values so "abc" or a missing field coerces to 0 instead of
// failing the whole request.
type logRequest struct {
	Title       string     `json:"titulo" binding:"required"`
	Category    string     `json:"categoria" binding:"required"`
	Description string     `json:"descricao"`
	HoursWorked any        `json:"horasTrabalhadas"`
	LinesOfCode any        `json:"linhasCodigo"`
	BugsFixed   any        `json:"bugsCorrigidos"`
	RecordedAt  *time.Time `json:"dataRegistro"`
}

func (r logRequest) toInput() services.LogInput {
	return services.LogInput{
		Title:       r.Title,
		Category:    r.Category,
		Description: r.Description,
		HoursWorked: utils.CoerceFloat(r.HoursWorked),
		LinesOfCode: utils.CoerceInt(r.LinesOfCode),
		BugsFixed:   utils.CoerceInt(r.BugsFixed),
	}
}

// CreateLog records a new log entry.
func (h *LogHandler) CreateLog(c *gin.Context) {
	type createLogRequest struct {
		OwnerUserID uint64 `json:"ownerUserId" binding:"required"`
		logRequest
	}

	var req createLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "ownerUserId, titulo and categoria are required")
		return
	}

	entry, err := h.logService.Create(req.OwnerUserID, req.toInput(), req.RecordedAt)
	if err != nil {
		respondLogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": entry.ID})
}

// ListLogs returns the paginated feed for a viewer.
func (h *LogHandler) ListLogs(c *gin.Context) {
	viewerIDStr := c.Query("viewerId")
	if viewerIDStr == "" {
		apierrors.BadRequest(c, "viewerId is required")
		return
	}
	viewerID, err := strconv.ParseUint(viewerIDStr, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid viewerId")
		return
	}

	params := utils.GetPaginationParams(c)

	rows, total, err := h.logService.List(repository.LogFilter{
		ViewerID: viewerID,
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch logs")
		return
	}

	c.JSON(http.StatusOK, dto.ToLogListResponse(rows, params.Page, params.PageSize, total))
}

// GetLog returns a specific log entry by ID.
func (h *LogHandler) GetLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.logService.Get(id)
	if err != nil {
		respondLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateLog replaces a log entry's writable fields. Owner-only.
func (h *LogHandler) UpdateLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type updateLogRequest struct {
		ActingUserID uint64 `json:"actingUserId" binding:"required"`
		logRequest
	}

	var req updateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "actingUserId, titulo and categoria are required")
		return
	}

	if err := h.logService.Update(id, req.ActingUserID, req.toInput()); err != nil {
		respondLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Log updated"})
}

// DeleteLog removes a log entry with its likes and comments. Owner-only.
func (h *LogHandler) DeleteLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	actingUserID, err := strconv.ParseUint(c.Query("actingUserId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "actingUserId is required")
		return
	}

	if err := h.logService.Delete(id, actingUserID); err != nil {
		respondLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Log deleted"})
}

// GetUserMetrics returns a user's aggregate metrics.
func (h *LogHandler) GetUserMetrics(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	metrics, err := h.logService.Metrics(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch metrics")
		return
	}

	c.JSON(http.StatusOK, dto.ToMetricsDTO(*metrics))
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func respondLogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLogMissingFields),
		errors.Is(err, services.ErrUnknownOwner):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrLogNotFound):
		apierrors.NotFound(c, "Log not found")
	default:
		apierrors.InternalError(c, "")
	}
}
