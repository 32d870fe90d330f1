package models

import "time"

// Comment is a user-authored remark on a log entry. Only the author may
// update or delete it.
type Comment struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	LogID        uint64    `gorm:"column:id_log;not null;index" json:"logId"`
	AuthorUserID uint64    `gorm:"column:id_usuario;not null" json:"authorUserId"`
	Text         string    `gorm:"column:comentario;type:text;not null" json:"texto"`
	CommentedAt  time.Time `gorm:"column:data_comentario;not null" json:"dataComentario"`

	// Relations
	Author User     `gorm:"foreignKey:AuthorUserID" json:"-"`
	Log    LogEntry `gorm:"foreignKey:LogID" json:"-"`
}

func (Comment) TableName() string { return "comentarios" }
