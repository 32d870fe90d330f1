package models

// Like is an endorsement of a log entry by a user. The composite unique
// index is what keeps the pair unique under concurrent inserts: a racing
// duplicate surfaces as a store-level conflict, never a second row.
type Like struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	UserID uint64 `gorm:"column:id_user;not null;uniqueIndex:idx_likes_user_log" json:"userId"`
	LogID  uint64 `gorm:"column:id_log;not null;uniqueIndex:idx_likes_user_log;index" json:"logId"`

	// Relations
	User User     `gorm:"foreignKey:UserID" json:"-"`
	Log  LogEntry `gorm:"foreignKey:LogID" json:"-"`
}

func (Like) TableName() string { return "likes" }
