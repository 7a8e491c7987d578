package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

type ConversationStore struct {
	db *gorm.DB

	// SQLite only supports one writer at a time, so inserts are serialized.
	writeMu sync.Mutex

	now           func() time.Time
	lastTimestamp time.Time
}

func NewConversationStore(db *gorm.DB) *ConversationStore {
	return &ConversationStore{db: db, now: time.Now}
}

// nextTimestamp is monotonic across inserts and truncated to the microsecond
// precision postgres stores. Caller must hold writeMu.
func (s *ConversationStore) nextTimestamp() time.Time {
	ts := s.now().UTC().Truncate(time.Microsecond)
	if ts.Before(s.lastTimestamp) {
		ts = s.lastTimestamp
	}
	return ts
}

// Insert stores a new conversation. The id and timestamp are assigned here and
// returned on the record.
func (s *ConversationStore) Insert(ctx context.Context, question, answer string) (Conversation, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	conversation := Conversation{
		Timestamp: s.nextTimestamp(),
		Question:  question,
		Answer:    answer,
	}

	if err := s.db.WithContext(ctx).Create(&conversation).Error; err != nil {
		return Conversation{}, fmt.Errorf("error inserting conversation: %w", err)
	}
	s.lastTimestamp = conversation.Timestamp

	return conversation, nil
}

// ListAll returns every stored conversation, oldest first.
func (s *ConversationStore) ListAll(ctx context.Context) ([]Conversation, error) {
	conversations := make([]Conversation, 0)
	if err := s.db.WithContext(ctx).Order("timestamp ASC").Order("id ASC").Find(&conversations).Error; err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}
	return conversations, nil
}
