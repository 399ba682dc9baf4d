package models

import "time"

type ThumbnailResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Style         string    `json:"style"`
	ColorScheme   string    `json:"color_scheme,omitempty"`
	UserPrompt    string    `json:"user_prompt,omitempty"`
	PromptUsed    string    `json:"prompt_used,omitempty"`
	AspectRatio   string    `json:"aspect_ratio"`
	TextOverlay   string    `json:"text_overlay,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Status        string    `json:"status"`
	IsGenerating  bool      `json:"is_generating"`
	FailureReason string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type GenerateThumbnailResponse struct {
	Message   string            `json:"message"`
	Thumbnail ThumbnailResponse `json:"thumbnail"`
}

type ThumbnailListResponse struct {
	Thumbnails []ThumbnailResponse `json:"thumbnails"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CatalogEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CatalogResponse struct {
	Styles       []CatalogEntry `json:"styles"`
	ColorSchemes []CatalogEntry `json:"color_schemes"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func NewThumbnailResponse(t *Thumbnail) ThumbnailResponse {
	return ThumbnailResponse{
		ID:            t.ID.String(),
		UserID:        t.UserID.String(),
		Title:         t.Title,
		Style:         string(t.Style),
		ColorScheme:   t.ColorScheme.String,
		UserPrompt:    t.UserPrompt.String,
		PromptUsed:    t.PromptUsed.String,
		AspectRatio:   t.AspectRatio,
		TextOverlay:   t.TextOverlay.String,
		ImageURL:      t.ImageURL.String,
		Status:        string(t.Status),
		IsGenerating:  t.IsGenerating,
		FailureReason: t.FailureReason.String,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
