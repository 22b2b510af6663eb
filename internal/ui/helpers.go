package ui

import (
	"fmt"
	"strings"

	"github.com/ytraddan/storefront/internal/fakestore"
)

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// formatPrice renders a price with a currency sign, dropping trailing zero
// cents the way shop UIs do for round amounts.
func formatPrice(price float64) string {
	if price == float64(int(price)) {
		return fmt.Sprintf("$%d", int(price))
	}
	return fmt.Sprintf("$%.2f", price)
}

// ratingLabel renders the review aggregate, e.g. "★ 4.1 (9)".
func ratingLabel(r fakestore.Rating) string {
	if r.Count == 0 {
		return "no reviews"
	}
	return fmt.Sprintf("★ %.1f (%d)", r.Rate, r.Count)
}

// wrap breaks text into lines no wider than width, on word boundaries.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		wordLen := len([]rune(word))
		if i > 0 {
			if lineLen+1+wordLen > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += wordLen
	}
	return b.String()
}
