// Package dateutil resolves the report "generated" stamp.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits format string length.
const MaxFormatLength = 50

// DefaultFormat is used when "auto" is given without a format.
const DefaultFormat = "YYYY-MM-DD HH:mm:ss"

// tokens maps format tokens to Go layout components.
// Longer tokens come first so matching is greedy.
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named shortcuts accepted after "auto:".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"datetime": DefaultFormat,
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseFormat converts a token format string to a Go time layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss.
// Text in brackets is copied literally: "[on] YYYY" keeps "on".
// Other characters are copied as-is.
func ParseFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var sb strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			sb.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}

		n := 1
		literal := true
		for _, t := range tokens {
			if strings.HasPrefix(rest, t.token) {
				sb.WriteString(t.layout)
				n = len(t.token)
				literal = false
				break
			}
		}
		if literal {
			sb.WriteByte(rest[0])
		}
		rest = rest[n:]
	}

	return sb.String(), nil
}

// Resolve turns a --date value into the stamp shown in the report.
//   - "" -> "" (no stamp)
//   - "auto" -> now in DefaultFormat
//   - "auto:FORMAT" or "auto:preset" -> now in that format
//   - anything else -> returned trimmed, as a literal stamp
//
// now is injected so callers and tests control the clock.
func Resolve(value string, now time.Time) (string, error) {
	value = strings.TrimSpace(value)
	lower := strings.ToLower(value)

	switch {
	case value == "":
		return "", nil
	case lower == "auto":
		return format(DefaultFormat, now)
	case strings.HasPrefix(lower, "auto:"):
		spec := value[len("auto:"):]
		if preset, ok := Presets[strings.ToLower(spec)]; ok {
			spec = preset
		}
		return format(spec, now)
	case strings.HasPrefix(lower, "auto"):
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	default:
		return value, nil
	}
}

func format(spec string, now time.Time) (string, error) {
	layout, err := ParseFormat(spec)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
