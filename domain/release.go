package domain

import (
	"context"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReleaseStatus string

const (
	StatusDraft     ReleaseStatus = "Draft"
	StatusSubmitted ReleaseStatus = "Submitted"
	StatusPublished ReleaseStatus = "Published"
	StatusRejected  ReleaseStatus = "Rejected"
	StatusDeleted   ReleaseStatus = "Deleted"
)

// Assignable reports whether the status may be written through the generic
// update path. Deleted is reachable only through the soft-delete operation.
func (s ReleaseStatus) Assignable() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// Release is a musical work owned by one user. Streams and revenue are
// written by the external analytics collaborator; this service only reads
// and serializes them.
type Release struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	UserID       primitive.ObjectID   `bson:"user_id"`
	Title        string               `bson:"title"`
	Genre        string               `bson:"genre"`
	ReleaseDate  *time.Time           `bson:"release_date,omitempty"`
	Description  string               `bson:"description"`
	MusicAuthor  string               `bson:"music_author"`
	LyricsAuthor string               `bson:"lyrics_author"`
	AudioURL     string               `bson:"audio_url"`
	CoverURL     string               `bson:"cover_url"`
	Status       ReleaseStatus        `bson:"status"`
	Streams      int64                `bson:"streams"`
	Revenue      primitive.Decimal128 `bson:"revenue"`
	CreatedAt    time.Time            `bson:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}

// ReleaseSummary is the external representation. Field names are the stable
// wire names; absent dates serialize as explicit null, not omission.
type ReleaseSummary struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Genre        string  `json:"genre"`
	ReleaseDate  *string `json:"releaseDate"`
	Description  string  `json:"description"`
	MusicAuthor  string  `json:"musicAuthor"`
	LyricsAuthor string  `json:"lyricsAuthor"`
	AudioURL     string  `json:"audioUrl"`
	CoverURL     string  `json:"coverUrl"`
	Status       string  `json:"status"`
	Streams      int64   `json:"streams"`
	Revenue      float64 `json:"revenue"`
}

const releaseDateLayout = "2006-01-02"

func (r *Release) Summary() ReleaseSummary {
	var date *string
	if r.ReleaseDate != nil {
		formatted := r.ReleaseDate.Format(releaseDateLayout)
		date = &formatted
	}
	return ReleaseSummary{
		ID:           r.ID.Hex(),
		Title:        r.Title,
		Genre:        r.Genre,
		ReleaseDate:  date,
		Description:  r.Description,
		MusicAuthor:  r.MusicAuthor,
		LyricsAuthor: r.LyricsAuthor,
		AudioURL:     r.AudioURL,
		CoverURL:     r.CoverURL,
		Status:       string(r.Status),
		Streams:      r.Streams,
		Revenue:      decimalToFloat(r.Revenue),
	}
}

func decimalToFloat(d primitive.Decimal128) float64 {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

type CreateReleaseRequest struct {
	UserID       string `json:"userId"`
	Title        string `json:"title"`
	Genre        string `json:"genre"`
	ReleaseDate  string `json:"releaseDate"`
	Description  string `json:"description"`
	MusicAuthor  string `json:"musicAuthor"`
	LyricsAuthor string `json:"lyricsAuthor"`
	AudioURL     string `json:"audioUrl"`
	CoverURL     string `json:"coverUrl"`
}

// ReleaseRepository is the ownership-scoped record store: every read and
// write carries the owner predicate, so cross-owner access is impossible at
// the storage boundary.
type ReleaseRepository interface {
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]Release, error)
	Create(ctx context.Context, release *Release) error
	ApplyMutation(ctx context.Context, ownerID, releaseID primitive.ObjectID, mutation bson.D) (bool, error)
	SoftDelete(ctx context.Context, ownerID, releaseID primitive.ObjectID) error
}

type ReleaseUsecase interface {
	Create(ctx context.Context, req *CreateReleaseRequest) (*ReleaseSummary, error)
	List(ctx context.Context, userID string) ([]ReleaseSummary, error)
	Update(ctx context.Context, req *UpdateReleaseRequest) error
	Delete(ctx context.Context, userID, releaseID string) error
}
