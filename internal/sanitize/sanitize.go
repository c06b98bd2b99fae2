// Package sanitize cleans pasted chat text before it reaches the extraction
// engine. The engine itself must survive unsanitized input; this package is
// the boundary that turns hostile input into a user-facing validation error
// instead of letting it travel further.
package sanitize

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/orderkyat/orderkyat/internal/common"
)

// MaxInputLength caps the order text, in runes. Bounds worst-case matching
// latency downstream.
const MaxInputLength = 1000

var tagRe = regexp.MustCompile(`<[^>]*>`)

// punctuation allowed besides letters, digits and whitespace.
const allowedPunct = ",@.-+()/"

// Sanitize strips markup-like substrings, drops characters outside the
// allow-list (Unicode letters including the Myanmar script, digits,
// whitespace and common order punctuation) and truncates to MaxInputLength.
func Sanitize(raw string) string {
	return SanitizeWith(raw, nil)
}

// SanitizeWith is Sanitize with drop logging.
func SanitizeWith(raw string, logger *slog.Logger) string {
	withoutTags := tagRe.ReplaceAllString(raw, " ")

	dropped := 0
	var b strings.Builder
	b.Grow(len(withoutTags))
	for _, r := range withoutTags {
		if allowedRune(r) {
			b.WriteRune(r)
		} else {
			dropped++
		}
	}

	out := strings.TrimSpace(b.String())
	if runes := []rune(out); len(runes) > MaxInputLength {
		out = strings.TrimSpace(string(runes[:MaxInputLength]))
	}

	if logger != nil && (dropped > 0 || withoutTags != raw) {
		logger.Warn("sanitize.dropped",
			"dropped_runes", dropped,
			"had_markup", withoutTags != raw,
		)
	}
	return out
}

// Validate rejects genuinely hostile input outright: markup and over-long
// messages surface as validation errors, not as silently emptier results.
func Validate(raw string) error {
	if len([]rune(raw)) > MaxInputLength {
		return common.NewAppError("INPUT_TOO_LONG", "order text exceeds 1000 characters", common.ErrInvalidInput)
	}
	if tagRe.MatchString(raw) {
		return common.NewAppError("INPUT_HAS_MARKUP", "order text contains markup", common.ErrInvalidInput)
	}
	return nil
}

func allowedRune(r rune) bool {
	// IsMark keeps combining vowel signs, without which Myanmar text falls apart.
	if unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
		return true
	}
	return strings.ContainsRune(allowedPunct, r)
}
