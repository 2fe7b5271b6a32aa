package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/text/unicode/norm"
)

var jsonNull = []byte("null")

// OptionalString records whether a JSON key was present at all and whether
// its value was an explicit null. The zero value means the key was absent.
type OptionalString struct {
	Present bool
	Valid   bool
	Value   string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, jsonNull) {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// UpdateReleaseRequest carries a sparse partial update. An absent key means
// "leave the field alone"; a present key means "set it", including present
// keys carrying an empty string or an explicit null for the free-text fields.
// Unknown JSON keys never survive decoding, so nothing outside this fixed
// field set can reach storage.
type UpdateReleaseRequest struct {
	UserID       string         `json:"userId"`
	ReleaseID    string         `json:"releaseId"`
	Title        OptionalString `json:"title"`
	Genre        OptionalString `json:"genre"`
	ReleaseDate  OptionalString `json:"releaseDate"`
	Description  OptionalString `json:"description"`
	MusicAuthor  OptionalString `json:"musicAuthor"`
	LyricsAuthor OptionalString `json:"lyricsAuthor"`
	AudioURL     OptionalString `json:"audioUrl"`
	CoverURL     OptionalString `json:"coverUrl"`
	Status       OptionalString `json:"status"`
}

// Compile translates the request into an ordered list of field assignments
// ready for a single $set. Title and genre ignore empty and null values so
// the non-empty creation invariant stays enforceable; every other present
// key is written as-is, with null collapsing to the field's cleared form. A
// successful compilation always ends with a fresh updated_at assignment.
func (r *UpdateReleaseRequest) Compile() (bson.D, error) {
	mutation := bson.D{}

	if r.Title.Present && r.Title.Value != "" {
		mutation = append(mutation, bson.E{Key: "title", Value: norm.NFC.String(r.Title.Value)})
	}
	if r.Genre.Present && r.Genre.Value != "" {
		mutation = append(mutation, bson.E{Key: "genre", Value: norm.NFC.String(r.Genre.Value)})
	}
	if r.ReleaseDate.Present {
		if r.ReleaseDate.Value == "" {
			mutation = append(mutation, bson.E{Key: "release_date", Value: nil})
		} else {
			date, err := time.Parse(releaseDateLayout, r.ReleaseDate.Value)
			if err != nil {
				return nil, NewValidationError("releaseDate must be formatted as YYYY-MM-DD")
			}
			mutation = append(mutation, bson.E{Key: "release_date", Value: date.UTC()})
		}
	}
	if r.Description.Present {
		mutation = append(mutation, bson.E{Key: "description", Value: r.Description.Value})
	}
	if r.MusicAuthor.Present {
		mutation = append(mutation, bson.E{Key: "music_author", Value: r.MusicAuthor.Value})
	}
	if r.LyricsAuthor.Present {
		mutation = append(mutation, bson.E{Key: "lyrics_author", Value: r.LyricsAuthor.Value})
	}
	if r.AudioURL.Present {
		mutation = append(mutation, bson.E{Key: "audio_url", Value: r.AudioURL.Value})
	}
	if r.CoverURL.Present {
		mutation = append(mutation, bson.E{Key: "cover_url", Value: r.CoverURL.Value})
	}
	if r.Status.Present {
		status := ReleaseStatus(r.Status.Value)
		if !status.Assignable() {
			return nil, NewValidationError("status must be one of Draft, Submitted, Published, Rejected")
		}
		mutation = append(mutation, bson.E{Key: "status", Value: status})
	}

	if len(mutation) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	mutation = append(mutation, bson.E{Key: "updated_at", Value: time.Now().UTC()})
	return mutation, nil
}
