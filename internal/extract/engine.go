package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/orderkyat/orderkyat/internal/entity"
)

// Engine turns a raw order message into an entity.ExtractionResult through a
// fixed pipeline of pattern-matching stages. It holds no mutable state: the
// same input always yields the same field values (item ids aside), and
// concurrent calls are independent.
//
// Unparseable fragments are silently omitted from the output; Extract never
// fails, whatever the input.
type Engine struct {
	locale Locale

	nameRe  *regexp.Regexp
	phoneRe *regexp.Regexp
	itemRe  *regexp.Regexp
	cityRe  *regexp.Regexp // nil when the locale lists no cities
	tailRe  *regexp.Regexp

	fillers map[string]struct{}
}

// Bounds accepted for the trailing-address fallback.
const (
	minFallbackAddressLen = 2
	maxFallbackAddressLen = 50
)

// NewEngine compiles the stage patterns for the given locale.
func NewEngine(locale Locale) (*Engine, error) {
	if len(locale.PhonePatterns) == 0 {
		return nil, fmt.Errorf("extract: locale %q has no phone patterns", locale.Name)
	}

	phoneRe, err := regexp.Compile("(" + strings.Join(locale.PhonePatterns, "|") + ")")
	if err != nil {
		return nil, fmt.Errorf("extract: compile phone pattern: %w", err)
	}

	fillers := make(map[string]struct{}, len(locale.FillerWords))
	for _, w := range locale.FillerWords {
		fillers[strings.ToLower(w)] = struct{}{}
	}

	var cityRe *regexp.Regexp
	if len(locale.Cities) > 0 {
		quoted := make([]string, len(locale.Cities))
		for i, c := range locale.Cities {
			quoted[i] = regexp.QuoteMeta(c)
		}
		cityRe, err = regexp.Compile(`(?i)(` + strings.Join(quoted, "|") + `)`)
		if err != nil {
			return nil, fmt.Errorf("extract: compile city pattern: %w", err)
		}
	}

	return &Engine{
		locale:  locale,
		phoneRe: phoneRe,
		// Leading letters-and-spaces run, valid only when a comma follows.
		// A digit or symbol inside the run kills the match entirely.
		nameRe: regexp.MustCompile(`^([A-Za-z\s]+?),`),
		// <quantity> <item-name> then either "(<price>)" or "@ <price>",
		// price digits optionally comma-grouped.
		itemRe: regexp.MustCompile(`(\d+)\s+([A-Za-z\s]+?)\s*(?:\((\d+(?:,\d{3})*)\)|@\s*(\d+(?:,\d{3})*))`),
		cityRe: cityRe,
		tailRe: regexp.MustCompile(`^[A-Za-z ]+$`),

		fillers: fillers,
	}, nil
}

// MustEngine is NewEngine for known-good locales.
func MustEngine(locale Locale) *Engine {
	e, err := NewEngine(locale)
	if err != nil {
		panic(err)
	}
	return e
}

// Extract parses the order text. Stages run independently; precedence across
// ambiguous matches is fixed: first phone match wins, item matches are
// left-to-right non-overlapping, and a known city beats the trailing-text
// address guess.
func (e *Engine) Extract(text string) entity.ExtractionResult {
	clean := strings.TrimSpace(text)

	items, lastItemEnd := e.extractItems(clean)

	result := entity.ExtractionResult{
		CustomerName: e.extractName(clean),
		Phone:        e.extractPhone(clean),
		Address:      e.resolveAddress(clean, lastItemEnd),
		Items:        items,
	}
	result.Recompute()
	return result
}

// extractName matches the leading run of letters and spaces up to the first
// comma. No comma directly after the run means no name.
func (e *Engine) extractName(text string) string {
	m := e.nameRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractPhone takes the first occurrence of a local mobile-number shape.
// It does not attempt to pick a "best" number among several.
func (e *Engine) extractPhone(text string) string {
	return e.phoneRe.FindString(text)
}

// extractItems scans the whole text for quantity/name/price triples and
// returns them in order of appearance, plus the byte offset just past the
// last match (-1 when nothing matched) for the address fallback.
func (e *Engine) extractItems(text string) ([]entity.InvoiceItem, int) {
	matches := e.itemRe.FindAllStringSubmatchIndex(text, -1)

	items := make([]entity.InvoiceItem, 0, len(matches))
	lastEnd := -1
	for _, m := range matches {
		group := func(i int) string {
			if m[2*i] < 0 {
				return ""
			}
			return text[m[2*i]:m[2*i+1]]
		}

		// Price sits in group 3 (parentheses) or group 4 (@ marker).
		priceStr := group(3)
		if priceStr == "" {
			priceStr = group(4)
		}

		items = append(items, entity.InvoiceItem{
			ID:        uuid.New(),
			Name:      strings.TrimSpace(group(2)),
			Quantity:  parseAmount(group(1)),
			UnitPrice: parseAmount(priceStr),
		})
		lastEnd = m[1]
	}
	return items, lastEnd
}

// parseAmount parses a digit run, stripping thousands commas. Anything
// unparseable counts as zero rather than an error.
func parseAmount(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// resolveAddress runs the two-phase resolution: a case-insensitive scan over
// the known-city list first, then a best-effort guess from the text trailing
// the last matched item. The city match is the leftmost occurrence in the
// text, list order breaking ties at the same position; the matched slice is
// returned as written in the message, casing preserved.
func (e *Engine) resolveAddress(text string, lastItemEnd int) string {
	if e.cityRe != nil {
		if loc := e.cityRe.FindStringIndex(text); loc != nil {
			return text[loc[0]:loc[1]]
		}
	}

	if lastItemEnd < 0 || lastItemEnd >= len(text) {
		return ""
	}
	tail := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(text[lastItemEnd:]), ","))
	if len(tail) < minFallbackAddressLen || len(tail) > maxFallbackAddressLen {
		return ""
	}
	if !e.tailRe.MatchString(tail) {
		return ""
	}
	if _, filler := e.fillers[strings.ToLower(tail)]; filler {
		return ""
	}
	return tail
}
