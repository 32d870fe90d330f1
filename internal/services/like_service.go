package services

import (
	"errors"
	"fmt"

	"github.com/hvndev/devhub-api/internal/models"
	"github.com/hvndev/devhub-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAlreadyLiked = errors.New("already liked")
	ErrLikeNotFound = errors.New("like not found")
)

// LikeService handles like business logic.
type LikeService struct {
	likeRepo repository.LikeRepository
	logRepo  repository.LogRepository
}

// NewLikeService creates a new LikeService.
func NewLikeService(likeRepo repository.LikeRepository, logRepo repository.LogRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		logRepo:  logRepo,
	}
}

// Like records a like for a (user, log) pair. A duplicate is a distinct
// conflict, not a generic failure; the unique index is the arbiter, so a
// race between two identical likes still yields exactly one row.
func (s *LikeService) Like(logID, userID uint64) error {
	if err := s.checkLogExists(logID); err != nil {
		return err
	}

	if err := s.likeRepo.Create(&models.Like{LogID: logID, UserID: userID}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

// Unlike removes a like for a (user, log) pair.
func (s *LikeService) Unlike(logID, userID uint64) error {
	affected, err := s.likeRepo.Delete(logID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if affected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

// Toggle atomically flips the like state for a (user, log) pair and reports
// the resulting state.
func (s *LikeService) Toggle(logID, userID uint64) (bool, error) {
	if err := s.checkLogExists(logID); err != nil {
		return false, err
	}

	liked, err := s.likeRepo.Toggle(logID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}
	return liked, nil
}

func (s *LikeService) checkLogExists(logID uint64) error {
	if _, err := s.logRepo.FindByID(logID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLogNotFound
		}
		return fmt.Errorf("failed to check log entry: %w", err)
	}
	return nil
}
