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
	ErrLogNotFound      = errors.New("log entry not found")
	ErrLogMissingFields = errors.New("titulo and categoria are required")
	ErrUnknownOwner     = errors.New("ownerUserId does not reference a user")
)

// LogService handles log entry business logic.
type LogService struct {
	logRepo  repository.LogRepository
	userRepo repository.UserRepository
}

// NewLogService creates a new LogService.
func NewLogService(logRepo repository.LogRepository, userRepo repository.UserRepository) *LogService {
	return &LogService{
		logRepo:  logRepo,
		userRepo: userRepo,
	}
}

// LogInput carries the writable fields of a log entry. The numeric fields
// arrive already coerced to their non-negative defaults.
type LogInput struct {
	Title       string
	Category    string
	Description string
	HoursWorked float64
	LinesOfCode int64
	BugsFixed   int64
}

// Create records a new log entry for its owner. RecordedAt defaults to the
// server clock unless the caller supplies one.
func (s *LogService) Create(ownerUserID uint64, input LogInput, recordedAt *time.Time) (*models.LogEntry, error) {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	if title == "" || category == "" {
		return nil, ErrLogMissingFields
	}

	if _, err := s.userRepo.FindByID(ownerUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownOwner
		}
		return nil, fmt.Errorf("failed to check owner: %w", err)
	}

	when := time.Now()
	if recordedAt != nil {
		when = *recordedAt
	}

	entry := &models.LogEntry{
		OwnerUserID: ownerUserID,
		Title:       title,
		Category:    category,
		Description: input.Description,
		HoursWorked: input.HoursWorked,
		LinesOfCode: input.LinesOfCode,
		BugsFixed:   input.BugsFixed,
		RecordedAt:  when,
	}

	if err := s.logRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create log entry: %w", err)
	}

	return entry, nil
}

// Get retrieves a log entry by ID.
func (s *LogService) Get(id uint64) (*models.LogEntry, error) {
	entry, err := s.logRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to find log entry: %w", err)
	}
	return entry, nil
}

// List retrieves the feed for a viewer.
func (s *LogService) List(filter repository.LogFilter) ([]repository.LogFeedRow, int64, error) {
	return s.logRepo.List(filter)
}

// Update replaces a log entry's writable fields. Only the owner may update;
// a mismatch is indistinguishable from a missing entry.
func (s *LogService) Update(id, actingUserID uint64, input LogInput) error {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	if title == "" || category == "" {
		return ErrLogMissingFields
	}

	fields := map[string]any{
		"titulo":                title,
		"categoria":             category,
		"descricao_do_trabalho": input.Description,
		"horas_trabalhadas":     input.HoursWorked,
		"linhas_codigo":         input.LinesOfCode,
		"bugs_corrigidos":       input.BugsFixed,
	}

	affected, err := s.logRepo.UpdateOwned(id, actingUserID, fields)
	if err != nil {
		return fmt.Errorf("failed to update log entry: %w", err)
	}
	if affected == 0 {
		return ErrLogNotFound
	}
	return nil
}

// Delete removes a log entry with its likes and comments. Same ownership
// policy as Update.
func (s *LogService) Delete(id, actingUserID uint64) error {
	affected, err := s.logRepo.DeleteOwned(id, actingUserID)
	if err != nil {
		return fmt.Errorf("failed to delete log entry: %w", err)
	}
	if affected == 0 {
		return ErrLogNotFound
	}
	return nil
}

// Metrics aggregates a user's log entries; a user with no entries gets
// zeros, never nulls.
func (s *LogService) Metrics(userID uint64) (*repository.UserMetrics, error) {
	metrics, err := s.logRepo.UserMetrics(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate metrics: %w", err)
	}
	return metrics, nil
}
