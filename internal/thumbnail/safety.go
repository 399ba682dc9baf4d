package thumbnail

import "strings"

// bannedWords are matched as substrings, so "skill" trips "kill". That
// over-blocking is accepted.
var bannedWords = []string{
	"nude", "porn", "sex", "xxx", "erotic", "naked", "boobs",
	"kill", "murder", "terrorist", "bomb",
	"hate", "racist", "abuse",
	"drug", "cocaine", "heroin",
}

// IsUnsafe reports whether text contains any banned word, ignoring case.
func IsUnsafe(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range bannedWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
