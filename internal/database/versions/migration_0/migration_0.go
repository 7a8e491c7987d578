package migration_0

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Conversation struct {
	Id        uint `gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time
	Question  string `gorm:"type:text"`
	Answer    string `gorm:"type:text"`
}

func Migration(db *gorm.DB) error {
	if err := db.Migrator().CreateTable(&Conversation{}); err != nil {
		return fmt.Errorf("error creating conversations table: %w", err)
	}
	return nil
}
