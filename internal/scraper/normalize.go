package scraper

import (
	"fmt"
	"strconv"
	"strings"
)

var currencyReplacer = strings.NewReplacer(
	"₹", "",
	"Rs.", "",
	"Rs", "",
	"$", "",
	",", "",
	" ", " ",
)

// ParseNumber converts a locale-formatted display string into a float.
// Currency symbols, thousands separators and surrounding whitespace are
// stripped. A slash-delimited range collapses to its first segment.
// Anything that still fails to convert yields ErrUnparseable.
func ParseNumber(raw string) (float64, error) {
	cleaned := strings.TrimSpace(currencyReplacer.Replace(raw))

	// Ranges like "141 / 148" collapse to the first value.
	if idx := strings.Index(cleaned, "/"); idx >= 0 {
		cleaned = cleaned[:idx]
	}
	cleaned = strings.TrimSpace(cleaned)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparseable, raw)
	}
	return value, nil
}
