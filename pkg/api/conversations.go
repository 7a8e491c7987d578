package api

import "time"

type AskRequest struct {
	Question string `json:"question"`
}

type Conversation struct {
	Id        uint      `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
}
