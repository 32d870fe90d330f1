package repository

import (
	"github.com/hvndev/devhub-api/internal/models"
	"gorm.io/gorm"
)

// GormLogRepository is a GORM implementation of LogRepository
type GormLogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *gorm.DB) LogRepository {
	return &GormLogRepository{db: db}
}

// Create creates a new log entry
func (r *GormLogRepository) Create(entry *models.LogEntry) error {
	return r.db.Create(entry).Error
}

// FindByID finds a log entry by ID
func (r *GormLogRepository) FindByID(id uint64) (*models.LogEntry, error) {
	var entry models.LogEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List retrieves the feed. Like and comment counts and the viewer flag are
// computed with correlated subqueries so a row never fans out, whatever the
// number of likes or comments behind it.
func (r *GormLogRepository) List(filter LogFilter) ([]LogFeedRow, int64, error) {
	query := r.db.Model(&models.LogEntry{}).
		Joins("JOIN usuario ON usuario.id = log_dev.id_usuario")

	if filter.Category != "" {
		query = query.Where("log_dev.categoria = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(log_dev.titulo LIKE ? OR log_dev.descricao_do_trabalho LIKE ?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Select(`log_dev.*, usuario.nome AS autor_nome,
		(SELECT COUNT(*) FROM likes WHERE likes.id_log = log_dev.id) AS like_count,
		(SELECT COUNT(*) FROM comentarios WHERE comentarios.id_log = log_dev.id) AS comment_count,
		EXISTS(SELECT 1 FROM likes WHERE likes.id_log = log_dev.id AND likes.id_user = ?) AS viewer_has_liked`,
		filter.ViewerID).
		Order("log_dev.data_registro DESC, log_dev.id DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	rows := []LogFeedRow{}
	if err := listQuery.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// UpdateOwned updates a log entry only when the acting user owns it. The
// ownership check rides on the UPDATE itself, so there is no window between
// check and write.
func (r *GormLogRepository) UpdateOwned(id, ownerUserID uint64, fields map[string]any) (int64, error) {
	result := r.db.Model(&models.LogEntry{}).
		Where("id = ? AND id_usuario = ?", id, ownerUserID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// DeleteOwned deletes a log entry and its dependent rows. The conditional
// delete of the entry runs first; if it matches nothing the transaction
// rolls back and the likes and comments stay put.
func (r *GormLogRepository) DeleteOwned(id, ownerUserID uint64) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND id_usuario = ?", id, ownerUserID).
			Delete(&models.LogEntry{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		if deleted == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("id_log = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id_log = ?", id).Delete(&models.Comment{}).Error
	})
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	return deleted, err
}

// UserMetrics aggregates a user's log entries. COALESCE keeps the sums at
// zero for users with no entries instead of leaking SQL NULLs upward.
func (r *GormLogRepository) UserMetrics(userID uint64) (*UserMetrics, error) {
	var metrics UserMetrics
	err := r.db.Model(&models.LogEntry{}).
		Select(`COUNT(id) AS total_logs,
			COALESCE(SUM(horas_trabalhadas), 0) AS total_hours,
			COALESCE(SUM(bugs_corrigidos), 0) AS total_bugs_fixed`).
		Where("id_usuario = ?", userID).
		Scan(&metrics).Error
	if err != nil {
		return nil, err
	}
	return &metrics, nil
}
