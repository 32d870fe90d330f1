package dto

import (
	"time"

	"github.com/hvndev/devhub-api/internal/repository"
)

// LogFeedItemDTO represents one row of the feed: the entry itself plus the
// author's name, aggregate counts and the viewer's own like flag.
type LogFeedItemDTO struct {
	ID             uint64    `json:"id"`
	OwnerUserID    uint64    `json:"ownerUserId"`
	Title          string    `json:"titulo"`
	Category       string    `json:"categoria"`
	Description    string    `json:"descricao"`
	HoursWorked    float64   `json:"horasTrabalhadas"`
	LinesOfCode    int64     `json:"linhasCodigo"`
	BugsFixed      int64     `json:"bugsCorrigidos"`
	RecordedAt     time.Time `json:"dataRegistro"`
	AuthorName     string    `json:"authorName"`
	LikeCount      int64     `json:"likeCount"`
	CommentCount   int64     `json:"commentCount"`
	ViewerHasLiked bool      `json:"viewerHasLiked"`
}

// LogListResponse represents a paginated feed page
type LogListResponse struct {
	Logs       []LogFeedItemDTO `json:"logs"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalCount int64            `json:"totalCount"`
	TotalPages int              `json:"totalPages"`
}

// ToLogFeedItemDTO converts a feed row to its response shape
func ToLogFeedItemDTO(row repository.LogFeedRow) LogFeedItemDTO {
	return LogFeedItemDTO{
		ID:             row.ID,
		OwnerUserID:    row.OwnerUserID,
		Title:          row.Title,
		Category:       row.Category,
		Description:    row.Description,
		HoursWorked:    row.HoursWorked,
		LinesOfCode:    row.LinesOfCode,
		BugsFixed:      row.BugsFixed,
		RecordedAt:     row.RecordedAt,
		AuthorName:     row.AuthorName,
		LikeCount:      row.LikeCount,
		CommentCount:   row.CommentCount,
		ViewerHasLiked: row.ViewerHasLiked,
	}
}

// ToLogListResponse converts a page of feed rows to LogListResponse
func ToLogListResponse(rows []repository.LogFeedRow, page, pageSize int, totalCount int64) LogListResponse {
	items := make([]LogFeedItemDTO, len(rows))
	for i, row := range rows {
		items[i] = ToLogFeedItemDTO(row)
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return LogListResponse{
		Logs:       items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// MetricsDTO represents a user's aggregate metrics
type MetricsDTO struct {
	TotalLogs      int64   `json:"totalLogs"`
	TotalHours     float64 `json:"totalHours"`
	TotalBugsFixed int64   `json:"totalBugsFixed"`
}

// ToMetricsDTO converts aggregated metrics to their response shape
func ToMetricsDTO(metrics repository.UserMetrics) MetricsDTO {
	return MetricsDTO{
		TotalLogs:      metrics.TotalLogs,
		TotalHours:     metrics.TotalHours,
		TotalBugsFixed: metrics.TotalBugsFixed,
	}
}
