package repository

import (
	"time"

	"github.com/hvndev/devhub-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// LogRepository defines the interface for log entry data access
type LogRepository interface {
	// Create creates a new log entry
	Create(entry *models.LogEntry) error

	// FindByID finds a log entry by ID
	FindByID(id uint64) (*models.LogEntry, error)

	// List retrieves the feed with filtering, per-viewer flags and pagination
	List(filter LogFilter) ([]LogFeedRow, int64, error)

	// UpdateOwned updates a log entry with a single conditional statement.
	// Returns the number of matched rows: 0 means absent or not owned.
	UpdateOwned(id, ownerUserID uint64, fields map[string]any) (int64, error)

	// DeleteOwned deletes a log entry and its likes and comments in one
	// transaction. Returns the number of deleted log rows.
	DeleteOwned(id, ownerUserID uint64) (int64, error)

	// UserMetrics aggregates a user's log entries
	UserMetrics(userID uint64) (*UserMetrics, error)
}

// LikeRepository defines the interface for like data access
type LikeRepository interface {
	// Create inserts a like; a duplicate pair surfaces as gorm.ErrDuplicatedKey
	Create(like *models.Like) error

	// Delete removes a like, returning the number of deleted rows
	Delete(logID, userID uint64) (int64, error)

	// Toggle atomically likes or unlikes; returns whether the pair is liked
	// after the call
	Toggle(logID, userID uint64) (bool, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// ListByLog lists a log entry's comments, newest first, with author names
	ListByLog(logID uint64) ([]CommentRow, error)

	// UpdateOwned updates a comment's text with a single conditional
	// statement. Returns the number of matched rows.
	UpdateOwned(id, authorUserID uint64, text string) (int64, error)

	// DeleteOwned deletes a comment, returning the number of deleted rows
	DeleteOwned(id, authorUserID uint64) (int64, error)
}

// LogFilter holds filtering options for listing the feed
type LogFilter struct {
	ViewerID uint64
	Category string
	Search   string
	Page     int
	PageSize int
}

// LogFeedRow is one feed row: a log entry joined with its author's name and
// the aggregate like/comment counts plus the viewer's own like flag.
type LogFeedRow struct {
	ID             uint64    `gorm:"column:id"`
	OwnerUserID    uint64    `gorm:"column:id_usuario"`
	Title          string    `gorm:"column:titulo"`
	Category       string    `gorm:"column:categoria"`
	Description    string    `gorm:"column:descricao_do_trabalho"`
	HoursWorked    float64   `gorm:"column:horas_trabalhadas"`
	LinesOfCode    int64     `gorm:"column:linhas_codigo"`
	BugsFixed      int64     `gorm:"column:bugs_corrigidos"`
	RecordedAt     time.Time `gorm:"column:data_registro"`
	AuthorName     string    `gorm:"column:autor_nome"`
	LikeCount      int64     `gorm:"column:like_count"`
	CommentCount   int64     `gorm:"column:comment_count"`
	ViewerHasLiked bool      `gorm:"column:viewer_has_liked"`
}

// CommentRow is a comment joined with its author's display name
type CommentRow struct {
	ID           uint64    `gorm:"column:id"`
	LogID        uint64    `gorm:"column:id_log"`
	AuthorUserID uint64    `gorm:"column:id_usuario"`
	AuthorName   string    `gorm:"column:autor_nome"`
	Text         string    `gorm:"column:comentario"`
	CommentedAt  time.Time `gorm:"column:data_comentario"`
}

// UserMetrics holds the aggregates over a user's log entries. Sums are
// coalesced to zero in SQL so an empty history never yields nulls.
type UserMetrics struct {
	TotalLogs      int64   `gorm:"column:total_logs"`
	TotalHours     float64 `gorm:"column:total_hours"`
	TotalBugsFixed int64   `gorm:"column:total_bugs_fixed"`
}
