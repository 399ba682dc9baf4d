package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"thumbnail-backend/internal/thumbnail"
)

type Thumbnail struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Style         thumbnail.Style
	ColorScheme   sql.NullString
	UserPrompt    sql.NullString
	PromptUsed    sql.NullString
	AspectRatio   string
	TextOverlay   sql.NullString
	ImageURL      sql.NullString
	Status        thumbnail.Status
	IsGenerating  bool
	FailureReason sql.NullString
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPendingThumbnail builds the record stored before generation starts. req
// must already have passed thumbnail.Validate.
func NewPendingThumbnail(userID uuid.UUID, req thumbnail.Request) *Thumbnail {
	t := &Thumbnail{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        req.Title,
		Style:        req.Style,
		ColorScheme:  nullString(string(req.ColorScheme)),
		AspectRatio:  req.AspectRatio,
		TextOverlay:  nullString(req.TextOverlay),
		Status:       thumbnail.StatusPending,
		IsGenerating: true,
	}
	if req.HasUserPrompt() {
		t.UserPrompt = sql.NullString{String: req.UserPrompt, Valid: true}
		t.PromptUsed = sql.NullString{String: req.UserPrompt, Valid: true}
	}
	return t
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
