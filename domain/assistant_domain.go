package domain

import "errors"

var (
	MessageSuccessChat = "success"
	MessageFailedChat  = "assistant is unavailable right now"

	ErrAssistantUnavailable = errors.New("assistant request failed")
)

type (
	ChatMessage struct {
		Role    string `json:"role" validate:"required,oneof=user assistant"`
		Content string `json:"content" validate:"required"`
	}

	ChatRequest struct {
		Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}
)
