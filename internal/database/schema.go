package database

import (
	"time"
)

// Conversation is one persisted question/answer pair. Rows are append-only.
type Conversation struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"not null;index"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
}
