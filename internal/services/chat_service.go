package services

import (
	"context"
	"strings"

	"github.com/explore-karnataka/backend/internal/ai"
	"github.com/explore-karnataka/backend/internal/apperr"
)

// ChatService answers tourism questions through the completion collaborator,
// steering the model with the account's declared interests.
type ChatService struct {
	model ai.ChatModel
}

// NewChatService creates a new ChatService.
func NewChatService(model ai.ChatModel) *ChatService {
	return &ChatService{model: model}
}

// Ask sends the user message to the assistant. A provider failure is
// surfaced as unavailable, distinct from an internal fault, so the caller
// can tell the assistant is down rather than the service broken.
func (s *ChatService) Ask(ctx context.Context, interests []string, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperr.New(apperr.ErrValidation, "Message is required")
	}
	reply, err := s.model.Complete(ctx, systemPrompt(interests), message)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrUnavailable, err, "AI service unavailable")
	}
	return reply, nil
}

func systemPrompt(interests []string) string {
	interestLine := "General tourism"
	if len(interests) > 0 {
		interestLine = strings.Join(interests, ", ")
	}
	return `You are a smart tourism assistant for Karnataka tourism.

User interests:
` + interestLine + `

Rules:
- Answer only about Karnataka tourism, culture, food, festivals, travel.
- Prefer recommendations matching user interests.
- Be friendly, concise, and helpful.
- Politely refuse non-tourism questions.`
}
