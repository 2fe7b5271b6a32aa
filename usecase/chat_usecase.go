package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/olprod/olprod-backend/domain"
	"github.com/olprod/olprod-backend/internal/logger"
)

// FallbackReply is shown whenever the completion service is unconfigured or
// fails in any way. The chat path degrades instead of erroring.
const FallbackReply = "Thanks for your question! Our support team will get back to you shortly. " +
	"Average response time is 5-10 minutes."

const supportSystemPrompt = `You are the AI support assistant for OLPROD, a music distribution platform.

OLPROD helps artists:
- Publish music on 150+ stores (Spotify, Apple Music, VK Music, Yandex Music and more)
- Track streams and revenue in real time
- Withdraw earnings starting from 100 RUB to a bank card
- Create smart links for promotion

Your job:
1. Answer questions about the service briefly and to the point
2. Help with release uploads, withdrawals and smart links
3. Suggest contacting human support when unsure
4. Stay friendly and professional

Answer in the user's language, at most 2-3 sentences.`

type ChatConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type chatUsecase struct {
	config ChatConfig
	client *http.Client
}

func NewChatUsecase(config ChatConfig, timeout time.Duration) domain.ChatUsecase {
	if config.BaseURL == "" {
		config.BaseURL = "https://api.openai.com/v1"
	}
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}
	return &chatUsecase{
		config: config,
		client: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (uc *chatUsecase) Complete(ctx context.Context, message string) string {
	if uc.config.APIKey == "" {
		return FallbackReply
	}

	payload, err := json.Marshal(completionRequest{
		Model: uc.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: supportSystemPrompt},
			{Role: "user", Content: message},
		},
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		return FallbackReply
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uc.config.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return FallbackReply
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+uc.config.APIKey)

	resp, err := uc.client.Do(req)
	if err != nil {
		logger.Warn(logger.EventChatFallback, "completion request failed", logger.Fields("error", err.Error()))
		return FallbackReply
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn(logger.EventChatFallback, "completion request rejected", logger.Fields("status", resp.StatusCode))
		return FallbackReply
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return FallbackReply
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return FallbackReply
	}

	return completion.Choices[0].Message.Content
}
