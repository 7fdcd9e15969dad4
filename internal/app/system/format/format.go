// Package format turns Admin API values into display strings, applying the
// fallbacks used throughout the dashboard tables.
package format

import (
	"math"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display fallbacks.
const (
	NotAvailable  = "N/A"
	PendingStatus = "pending"
)

var (
	mu      sync.RWMutex
	printer = message.NewPrinter(language.English)
	symbol  = "$"
)

// Configure sets the locale used for digit grouping and the currency symbol
// prefixed to money values. An unparseable locale keeps English.
func Configure(locale, currencySymbol string) {
	mu.Lock()
	defer mu.Unlock()
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	printer = message.NewPrinter(tag)
	symbol = currencySymbol
}

// Text returns s trimmed, or N/A when empty.
func Text(s string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return NotAvailable
}

// Status returns the lower-cased status, or "pending" when empty.
func Status(s string) string {
	if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
		return s
	}
	return PendingStatus
}

// maxExactInt bounds the values Count converts to int64.
const maxExactInt = 1 << 62

// Count formats an integral quantity with digit grouping ("1,234"). NaN and
// infinities render as 0; magnitudes beyond int64 are printed as floats.
func Count(v float64) string {
	v = finite(v)
	mu.RLock()
	defer mu.RUnlock()
	if math.Abs(v) >= maxExactInt {
		return printer.Sprintf("%.0f", math.Trunc(v))
	}
	return printer.Sprintf("%d", int64(v))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Money formats v with two decimals, digit grouping and the configured
// currency symbol. A non-empty currency code replaces the symbol.
func Money(v float64, currency string) string {
	v = finite(v)
	mu.RLock()
	defer mu.RUnlock()
	prefix := symbol
	if c := strings.ToUpper(strings.TrimSpace(currency)); c != "" {
		prefix = c + " "
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + prefix + printer.Sprintf("%.2f", v)
}

// accepted timestamp layouts, most specific first.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date renders an API timestamp as "Jan 2, 2006 15:04" (UTC). Empty input
// yields N/A; input that is not a recognised timestamp is shown as sent.
func Date(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NotAvailable
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			if layout == "2006-01-02" {
				return t.Format("Jan 2, 2006")
			}
			return t.UTC().Format("Jan 2, 2006 15:04")
		}
	}
	return s
}

// YesNo renders a flag, treating an absent value as No.
func YesNo(v, set bool) string {
	if set && v {
		return "Yes"
	}
	return "No"
}

// ParseDay validates a YYYY-MM-DD day string, returning it normalised.
func ParseDay(s string) (string, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
