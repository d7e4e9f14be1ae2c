package dto

import (
	"time"

	"structai-be/pkg/navigation"
)

// CallbackRequest is a button-press event from the chat platform.
type CallbackRequest struct {
	UserId int64  `json:"user_id" validate:"required"`
	ChatId string `json:"chat_id" validate:"required"`
	Token  string `json:"token" validate:"required"`
}

// MessageRequest is a free-text message event from the chat platform.
type MessageRequest struct {
	UserId   int64  `json:"user_id" validate:"required"`
	ChatId   string `json:"chat_id" validate:"required"`
	Username string `json:"username"`
	Text     string `json:"text" validate:"required"`
}

// RenderResponse tells the transport what to show.
type RenderResponse struct {
	Text    string                `json:"text"`
	Buttons [][]navigation.Button `json:"buttons,omitempty"`
	Edit    bool                  `json:"edit"`
}

// PublishSuggestionMessage is the event-bus payload for captured
// suggestions.
type PublishSuggestionMessage struct {
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
	UserId   int64     `json:"user_id"`
	Text     string    `json:"text"`
}
