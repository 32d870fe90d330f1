package repository

import (
	"testing"
	"time"

	"github.com/hvndev/devhub-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.LogEntry{},
		&models.Like{},
		&models.Comment{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestLogRepository_ListDoesNotFanOut(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewLogRepository(db)

	ana := &models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(ana).Error)
	bruno := &models.User{Name: "Bruno", Email: "bruno@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(bruno).Error)

	entry := &models.LogEntry{
		OwnerUserID: ana.ID,
		Title:       "Entry",
		Category:    "backend",
		RecordedAt:  time.Now(),
	}
	require.NoError(t, db.Create(entry).Error)

	// 2 likes x 3 comments would yield 6 rows under a naive double join
	require.NoError(t, db.Create(&models.Like{UserID: ana.ID, LogID: entry.ID}).Error)
	require.NoError(t, db.Create(&models.Like{UserID: bruno.ID, LogID: entry.ID}).Error)
	for _, text := range []string{"one", "two", "three"} {
		require.NoError(t, db.Create(&models.Comment{
			LogID:        entry.ID,
			AuthorUserID: bruno.ID,
			Text:         text,
			CommentedAt:  time.Now(),
		}).Error)
	}

	rows, total, err := repo.List(LogFilter{ViewerID: bruno.ID, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	require.Equal(t, int64(2), rows[0].LikeCount)
	require.Equal(t, int64(3), rows[0].CommentCount)
	require.True(t, rows[0].ViewerHasLiked)
	require.Equal(t, "Ana", rows[0].AuthorName)
}

func TestLogRepository_ListOrderAndFilters(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewLogRepository(db)

	ana := &models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(ana).Error)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	older := &models.LogEntry{
		OwnerUserID: ana.ID, Title: "Older entry", Category: "backend",
		Description: "first pass", RecordedAt: base,
	}
	newer := &models.LogEntry{
		OwnerUserID: ana.ID, Title: "Newer entry", Category: "frontend",
		Description: "second pass over the parser", RecordedAt: base.Add(time.Hour),
	}
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	rows, total, err := repo.List(LogFilter{ViewerID: ana.ID, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Equal(t, "Newer entry", rows[0].Title)
	require.Equal(t, "Older entry", rows[1].Title)

	rows, total, err = repo.List(LogFilter{ViewerID: ana.ID, Category: "backend", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "Older entry", rows[0].Title)

	rows, total, err = repo.List(LogFilter{ViewerID: ana.ID, Search: "parser", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "Newer entry", rows[0].Title)

	// Substring match against the title as well
	rows, _, err = repo.List(LogFilter{ViewerID: ana.ID, Search: "Older", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Older entry", rows[0].Title)
}

func TestLogRepository_UpdateOwnedMatchesOnlyOwner(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewLogRepository(db)

	ana := &models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(ana).Error)
	entry := &models.LogEntry{
		OwnerUserID: ana.ID, Title: "Entry", Category: "backend", RecordedAt: time.Now(),
	}
	require.NoError(t, db.Create(entry).Error)

	affected, err := repo.UpdateOwned(entry.ID, ana.ID+1, map[string]any{"titulo": "stolen"})
	require.NoError(t, err)
	require.Zero(t, affected)

	affected, err = repo.UpdateOwned(entry.ID, ana.ID, map[string]any{"titulo": "renamed"})
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)
}

func TestLogRepository_UserMetricsCoalescesToZero(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewLogRepository(db)

	metrics, err := repo.UserMetrics(42)
	require.NoError(t, err)
	require.Zero(t, metrics.TotalLogs)
	require.Zero(t, metrics.TotalHours)
	require.Zero(t, metrics.TotalBugsFixed)
}

func TestLikeRepository_CreateDuplicateIsConflict(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewLikeRepository(db)

	require.NoError(t, repo.Create(&models.Like{UserID: 1, LogID: 1}))
	err := repo.Create(&models.Like{UserID: 1, LogID: 1})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Same user, different log is fine
	require.NoError(t, repo.Create(&models.Like{UserID: 1, LogID: 2}))
}

func TestLikeRepository_Toggle(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewLikeRepository(db)

	liked, err := repo.Toggle(7, 3)
	require.NoError(t, err)
	require.True(t, liked)

	liked, err = repo.Toggle(7, 3)
	require.NoError(t, err)
	require.False(t, liked)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	require.Zero(t, count)
}
