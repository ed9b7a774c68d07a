package model

import (
	"time"
)

type Journal struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	UserId    uint      `gorm:"not null;index"`
	Timestamp time.Time `gorm:"not null"`
	Emotion   string    `gorm:"type:varchar(50)"`
	Title     *string   `gorm:"type:varchar(255)"`
	Entry     string    `gorm:"type:text;not null"`
}

func (Journal) TableName() string {
	return "journal"
}
