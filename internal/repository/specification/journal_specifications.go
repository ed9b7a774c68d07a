package specification

import (
	"gorm.io/gorm"
)

type JournalOwnedBy struct {
	UserID uint
}

func (s JournalOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByEmotion struct {
	Emotion string
}

func (s ByEmotion) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("emotion = ?", s.Emotion)
}
