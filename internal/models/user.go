package models

// User is a registered account. The table keeps the legacy name and
// column layout from the original schema; the credential is stored as
// a bcrypt hash in the senha column.
type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Name         string `gorm:"column:nome;type:varchar(255);not null" json:"nome"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:senha;type:varchar(255);not null" json:"-"`

	// Relations
	Logs     []LogEntry `gorm:"foreignKey:OwnerUserID" json:"-"`
	Comments []Comment  `gorm:"foreignKey:AuthorUserID" json:"-"`
	Likes    []Like     `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string { return "usuario" }
