package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/utils"
)

// systemPrompt pins the assistant to cooking topics. It is fixed server-side
// and never accepted from the client.
const systemPrompt = "You are Savora's cooking assistant. Help users with recipes, " +
	"ingredient substitutions, cooking techniques, and meal planning. " +
	"Keep answers practical and concise. Politely decline questions " +
	"unrelated to food and cooking."

type (
	AssistantService interface {
		Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
	}

	assistantService struct {
		httpClient *http.Client
		apiURL     string
		apiKey     string
		model      string
	}

	chatCompletionRequest struct {
		Model       string        `json:"model"`
		Messages    []chatMessage `json:"messages"`
		Temperature float64       `json:"temperature"`
		TopP        float64       `json:"top_p"`
		MaxTokens   int           `json:"max_tokens"`
	}

	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatCompletionResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
)

func NewAssistantService() AssistantService {
	return &assistantService{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiURL:     utils.GetConfig("ASSISTANT_API_URL"),
		apiKey:     utils.GetConfig("ASSISTANT_API_KEY"),
		model:      utils.GetConfig("ASSISTANT_MODEL"),
	}
}

func (s *assistantService) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	messages := make([]chatMessage, 0, len(req.Messages)+1)
	messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	for _, m := range req.Messages {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	body := chatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   1024,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.ChatResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return domain.ChatResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("assistant upstream request failed: %v", err)
		return domain.ChatResponse{}, domain.ErrAssistantUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("assistant upstream returned %d", resp.StatusCode)
		return domain.ChatResponse{}, fmt.Errorf("%w: status %d", domain.ErrAssistantUnavailable, resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return domain.ChatResponse{}, domain.ErrAssistantUnavailable
	}
	if len(completion.Choices) == 0 {
		return domain.ChatResponse{}, domain.ErrAssistantUnavailable
	}

	return domain.ChatResponse{Reply: completion.Choices[0].Message.Content}, nil
}
