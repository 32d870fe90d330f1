package dto

import (
	"time"

	"github.com/hvndev/devhub-api/internal/models"
	"github.com/hvndev/devhub-api/internal/repository"
)

// CommentDTO represents a comment in API responses
type CommentDTO struct {
	ID           uint64    `json:"id"`
	LogID        uint64    `json:"logId"`
	AuthorUserID uint64    `json:"authorUserId"`
	AuthorName   string    `json:"authorName,omitempty"`
	Text         string    `json:"texto"`
	CommentedAt  time.Time `json:"dataComentario"`
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:           comment.ID,
		LogID:        comment.LogID,
		AuthorUserID: comment.AuthorUserID,
		Text:         comment.Text,
		CommentedAt:  comment.CommentedAt,
	}
}

// ToCommentDTOs converts joined comment rows to their response shape
func ToCommentDTOs(rows []repository.CommentRow) []CommentDTO {
	items := make([]CommentDTO, len(rows))
	for i, row := range rows {
		items[i] = CommentDTO{
			ID:           row.ID,
			LogID:        row.LogID,
			AuthorUserID: row.AuthorUserID,
			AuthorName:   row.AuthorName,
			Text:         row.Text,
			CommentedAt:  row.CommentedAt,
		}
	}
	return items
}
