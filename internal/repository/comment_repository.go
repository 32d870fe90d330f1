package repository

import (
	"github.com/hvndev/devhub-api/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListByLog lists a log entry's comments, newest first
func (r *GormCommentRepository) ListByLog(logID uint64) ([]CommentRow, error) {
	rows := []CommentRow{}
	err := r.db.Model(&models.Comment{}).
		Select("comentarios.*, usuario.nome AS autor_nome").
		Joins("JOIN usuario ON usuario.id = comentarios.id_usuario").
		Where("comentarios.id_log = ?", logID).
		Order("comentarios.data_comentario DESC, comentarios.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateOwned updates a comment only when the acting user authored it
func (r *GormCommentRepository) UpdateOwned(id, authorUserID uint64, text string) (int64, error) {
	result := r.db.Model(&models.Comment{}).
		Where("id = ? AND id_usuario = ?", id, authorUserID).
		Update("comentario", text)
	return result.RowsAffected, result.Error
}

// DeleteOwned deletes a comment only when the acting user authored it
func (r *GormCommentRepository) DeleteOwned(id, authorUserID uint64) (int64, error) {
	result := r.db.Where("id = ? AND id_usuario = ?", id, authorUserID).
		Delete(&models.Comment{})
	return result.RowsAffected, result.Error
}
