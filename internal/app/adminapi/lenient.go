// internal/app/adminapi/lenient.go
package adminapi

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a float that decodes from a JSON number, a numeric string or
// null. Anything else, including NaN, infinities and out-of-range values,
// decodes to zero instead of failing the payload.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*n = 0
	if len(b) == 0 || b[0] == 'n' {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if f, ok := parseFinite(strings.TrimSpace(s)); ok {
			*n = Number(f)
		}
		return nil
	}
	if f, ok := parseFinite(string(b)); ok {
		*n = Number(f)
	}
	return nil
}

// parseFinite parses s as a float, rejecting NaN and ±Inf spellings as well
// as values that overflow float64.
func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Float returns n as a float64.
func (n Number) Float() float64 { return float64(n) }

// Text is a string that also accepts JSON numbers and booleans (rendered as
// their literal text). Objects, arrays and null decode to "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*t = ""
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			*t = Text(s)
		}
	case 't', 'f':
		*t = Text(b)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*t = Text(b)
	}
	return nil
}

// String returns the trimmed text.
func (t Text) String() string { return strings.TrimSpace(string(t)) }

// Flag is a boolean that also accepts "true"/"false" strings and 0/1.
// Set reports whether the field carried a usable value.
type Flag struct {
	Value bool
	Set   bool
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	*f = Flag{}
	switch strings.ToLower(strings.Trim(string(bytes.TrimSpace(b)), `"`)) {
	case "true", "1":
		*f = Flag{Value: true, Set: true}
	case "false", "0":
		*f = Flag{Value: false, Set: true}
	}
	return nil
}
