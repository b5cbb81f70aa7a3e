package sanitize

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"listing-studio/internal/models"
)

// Free text from sellers is untrusted; StrictPolicy strips all markup.
var policy = bluemonday.StrictPolicy()

// maxSanitizePasses bounds the sanitize/unescape fixpoint iteration. Each
// pass strips one layer of entity encoding; real input converges in two.
const maxSanitizePasses = 8

// Text strips markup and control sequences from free text. It is idempotent
// and never fails; unparsable input degrades to an empty string.
func Text(s string) string {
	// Sanitize and unescape to a fixpoint. A single sanitize pass leaves
	// entity-encoded markup ("&lt;script&gt;") intact as text; unescaping
	// would then revive it as live markup. Iterating strips every layer, so
	// the output never contains anything a later pass would treat as a tag.
	out := s
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(policy.Sanitize(out))
		if next == out {
			break
		}
		out = next
	}
	out = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, out)
	return strings.TrimSpace(out)
}

// BoundedNumber parses a numeric string and clamps it into [min, max].
// Unparsable input yields fallback instead of an error so loading a draft
// with a garbage numeric field never fails.
func BoundedNumber(s string, min, max, fallback decimal.Decimal) decimal.Decimal {
	n, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	if n.LessThan(min) {
		return min
	}
	if n.GreaterThan(max) {
		return max
	}
	return n
}

// Tags splits a comma-joined tag string into sanitized, non-empty tags.
func Tags(s string) []string {
	return lo.FilterMap(strings.Split(s, ","), func(t string, _ int) (string, bool) {
		clean := Text(t)
		return clean, clean != ""
	})
}

// Form re-sanitizes every free-text field of a form snapshot. Numeric
// strings are trimmed but left for the validation engine to judge.
func Form(f models.FormState) models.FormState {
	f.Title = Text(f.Title)
	f.Description = Text(f.Description)
	f.Tags = strings.Join(Tags(f.Tags), ",")
	f.Price = strings.TrimSpace(f.Price)
	f.HoursWorn = strings.TrimSpace(f.HoursWorn)
	f.StartingPrice = strings.TrimSpace(f.StartingPrice)
	f.ReservePrice = strings.TrimSpace(f.ReservePrice)
	f.AuctionDuration = strings.TrimSpace(f.AuctionDuration)
	return f
}
