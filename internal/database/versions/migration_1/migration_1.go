package migration_1

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Listing orders by timestamp, so index it.
type Conversation struct {
	Timestamp time.Time `gorm:"index"`
}

func Migration(db *gorm.DB) error {
	if err := db.Migrator().CreateIndex(&Conversation{}, "Timestamp"); err != nil {
		return fmt.Errorf("error creating timestamp index: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropIndex(&Conversation{}, "Timestamp"); err != nil {
		return fmt.Errorf("error dropping timestamp index: %w", err)
	}

	return nil
}
