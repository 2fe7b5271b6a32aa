package domain

import "context"

const (
	MediaKindAudio = "audio"
	MediaKindCover = "cover"
)

// UploadResult carries the stored file's public URL plus best-effort
// metadata read from embedded audio tags, offered as form prefill.
type UploadResult struct {
	URL             string `json:"url"`
	Kind            string `json:"kind"`
	SuggestedTitle  string `json:"suggestedTitle,omitempty"`
	SuggestedArtist string `json:"suggestedArtist,omitempty"`
	SuggestedGenre  string `json:"suggestedGenre,omitempty"`
}

type UploadUsecase interface {
	Store(ctx context.Context, kind string, data []byte) (*UploadResult, error)
}
