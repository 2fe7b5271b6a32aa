package domain

import "context"

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ChatUsecase never fails upward: any completion-service problem degrades to
// a fixed fallback reply. Availability over correctness, for this path only.
type ChatUsecase interface {
	Complete(ctx context.Context, message string) string
}
