package models

import "time"

// LogEntry is a user-submitted record of development work. Numeric work
// fields are NOT NULL and default to zero; RecordedAt is assigned by the
// server at creation time unless the caller supplies one.
type LogEntry struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	OwnerUserID uint64    `gorm:"column:id_usuario;not null;index" json:"ownerUserId"`
	Title       string    `gorm:"column:titulo;type:varchar(255);not null" json:"titulo"`
	Category    string    `gorm:"column:categoria;type:varchar(100);not null;index" json:"categoria"`
	Description string    `gorm:"column:descricao_do_trabalho;type:text" json:"descricao"`
	HoursWorked float64   `gorm:"column:horas_trabalhadas;not null;default:0" json:"horasTrabalhadas"`
	LinesOfCode int64     `gorm:"column:linhas_codigo;not null;default:0" json:"linhasCodigo"`
	BugsFixed   int64     `gorm:"column:bugs_corrigidos;not null;default:0" json:"bugsCorrigidos"`
	RecordedAt  time.Time `gorm:"column:data_registro;not null;index" json:"dataRegistro"`

	// Relations
	Owner    User      `gorm:"foreignKey:OwnerUserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:LogID" json:"-"`
	Likes    []Like    `gorm:"foreignKey:LogID" json:"-"`
}

func (LogEntry) TableName() string { return "log_dev" }
