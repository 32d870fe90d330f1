package repository

import (
	"github.com/hvndev/devhub-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLikeRepository is a GORM implementation of LikeRepository
type GormLikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &GormLikeRepository{db: db}
}

// Create inserts a like. The composite unique index on (id_user, id_log)
// turns a racing double-insert into gorm.ErrDuplicatedKey.
func (r *GormLikeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

// Delete removes a like
func (r *GormLikeRepository) Delete(logID, userID uint64) (int64, error) {
	result := r.db.Where("id_log = ? AND id_user = ?", logID, userID).
		Delete(&models.Like{})
	return result.RowsAffected, result.Error
}

// Toggle likes the entry if the pair is absent and unlikes it otherwise.
// The insert-ignore-then-delete runs in one transaction under the unique
// index, so concurrent toggles on the same pair serialize at the store.
func (r *GormLikeRepository) Toggle(logID, userID uint64) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Like{LogID: logID, UserID: userID})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			liked = true
			return nil
		}
		return tx.Where("id_log = ? AND id_user = ?", logID, userID).
			Delete(&models.Like{}).Error
	})
	return liked, err
}
