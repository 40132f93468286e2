package util

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ParseIntLoose coerces the textual and numeric shapes a spreadsheet row may carry into an int.
// Strings follow parseInt: surrounding space is ignored and a fractional part is truncated.
// ok is false when nothing usable was found or the value is outside the int32 range.
func ParseIntLoose(v interface{}) (int, bool) {
	n, ok := parseIntLoose(v)
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return n, true
}

func parseIntLoose(v interface{}) (int, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return truncFloat(f)
	case float64:
		return truncFloat(t)
	case json.Number:
		return parseIntLoose(string(t))
	case bool:
		return 0, false
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// truncFloat refuses values an int conversion would not represent exactly.
func truncFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// SplitLines splits bulk text into trimmed, non-empty lines.
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
