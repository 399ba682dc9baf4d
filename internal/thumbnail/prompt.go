package thumbnail

import (
	"fmt"
	"strings"
)

const (
	promptPreamble = "Create a family-friendly, professional YouTube thumbnail. "
	promptClosing  = "High quality. Clickable. Clean."
)

// ComposePrompt builds the text sent to the image model. The segment order is
// fixed: preamble, style, title, color theme, extra details, aspect ratio and
// the closing quality keywords. r must already have passed Validate.
func ComposePrompt(r Request) string {
	var b strings.Builder

	b.WriteString(promptPreamble)
	fmt.Fprintf(&b, "Style: %s. ", r.Style.Description())
	fmt.Fprintf(&b, "Title: \"%s\". ", r.Title)

	if r.ColorScheme != "" {
		fmt.Fprintf(&b, "Color theme: %s. ", r.ColorScheme.Description())
	}

	if r.HasUserPrompt() {
		fmt.Fprintf(&b, "Extra details: %s. ", r.UserPrompt)
	}

	fmt.Fprintf(&b, "Aspect ratio %s. ", r.AspectRatio)
	b.WriteString(promptClosing)

	return b.String()
}
