package api

import (
	"qa-backend/internal/database"
	"qa-backend/pkg/api"
)

func convertConversation(c database.Conversation) api.Conversation {
	return api.Conversation{
		Id:        c.Id,
		Timestamp: c.Timestamp,
		Question:  c.Question,
		Answer:    c.Answer,
	}
}

func convertConversations(cs []database.Conversation) []api.Conversation {
	conversations := make([]api.Conversation, 0, len(cs))
	for _, c := range cs {
		conversations = append(conversations, convertConversation(c))
	}
	return conversations
}
