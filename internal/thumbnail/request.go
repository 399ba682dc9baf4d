package thumbnail

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength     = 200
	DefaultAspectRatio = "16:9"
)

var (
	ErrInvalidTitle       = errors.New("invalid title")
	ErrUnknownStyle       = errors.New("unknown style")
	ErrUnknownColorScheme = errors.New("unknown color scheme")
	ErrUnsafeContent      = errors.New("unsafe content")
)

// Request holds the user-facing parameters of one generation attempt.
type Request struct {
	Title       string
	Style       Style
	ColorScheme ColorScheme
	UserPrompt  string
	AspectRatio string
	TextOverlay string
}

// HasUserPrompt reports whether the request carries free text beyond whitespace.
func (r Request) HasUserPrompt() bool {
	return strings.TrimSpace(r.UserPrompt) != ""
}

// ValidationError is returned for input that must be rejected before any
// side effect takes place.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks r and normalizes it in place: the title is trimmed and a
// missing aspect ratio falls back to DefaultAspectRatio.
func Validate(r *Request) error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" || utf8.RuneCountInString(r.Title) > MaxTitleLength {
		return &ValidationError{Field: "title", Message: "Invalid or too long title", Err: ErrInvalidTitle}
	}

	if !r.Style.Valid() {
		return &ValidationError{
			Field:   "style",
			Message: fmt.Sprintf("Unknown style %q", string(r.Style)),
			Err:     ErrUnknownStyle,
		}
	}

	if r.ColorScheme != "" && !r.ColorScheme.Valid() {
		return &ValidationError{
			Field:   "color_scheme",
			Message: fmt.Sprintf("Unknown color scheme %q", string(r.ColorScheme)),
			Err:     ErrUnknownColorScheme,
		}
	}

	if r.HasUserPrompt() && IsUnsafe(r.UserPrompt) {
		return &ValidationError{
			Field:   "prompt",
			Message: "Unsafe content detected. Please modify your prompt.",
			Err:     ErrUnsafeContent,
		}
	}

	r.AspectRatio = strings.TrimSpace(r.AspectRatio)
	if r.AspectRatio == "" {
		r.AspectRatio = DefaultAspectRatio
	}

	return nil
}
