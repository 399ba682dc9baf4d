package models

type GenerateThumbnailRequest struct {
	Title string `json:"title" example:"10 Go tips you didn't know"`
	// Prompt is optional free text appended to the generated prompt.
	Prompt      string `json:"prompt,omitempty" example:"a gopher holding a lightbulb"`
	Style       string `json:"style" example:"Bold & Graphic"`
	AspectRatio string `json:"aspect_ratio,omitempty" example:"16:9"`
	ColorScheme string `json:"color_scheme,omitempty" example:"vibrant"`
	TextOverlay string `json:"text_overlay,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}
