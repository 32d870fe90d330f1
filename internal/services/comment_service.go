package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hvndev/devhub-api/internal/models"
	"github.com/hvndev/devhub-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyComment    = errors.New("texto must not be empty")
)

// CommentService handles comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	logRepo     repository.LogRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, logRepo repository.LogRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		logRepo:     logRepo,
	}
}

// Create adds a comment to an existing log entry. Any authenticated user
// may comment on any entry.
func (s *CommentService) Create(logID, authorUserID uint64, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	if _, err := s.logRepo.FindByID(logID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to check log entry: %w", err)
	}

	comment := &models.Comment{
		LogID:        logID,
		AuthorUserID: authorUserID,
		Text:         text,
		CommentedAt:  time.Now(),
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ListByLog lists a log entry's comments, newest first, with author names.
func (s *CommentService) ListByLog(logID uint64) ([]repository.CommentRow, error) {
	return s.commentRepo.ListByLog(logID)
}

// Update rewrites a comment's text. Only the author may update; a mismatch
// is indistinguishable from a missing comment.
func (s *CommentService) Update(id, actingUserID uint64, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyComment
	}

	affected, err := s.commentRepo.UpdateOwned(id, actingUserID, text)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Delete removes a comment. Same authorship policy as Update.
func (s *CommentService) Delete(id, actingUserID uint64) error {
	affected, err := s.commentRepo.DeleteOwned(id, actingUserID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
