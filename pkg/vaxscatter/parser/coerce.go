// Package parser loads state statistics from CSV and xlsx sources.
package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ToNumber converts cell text to a number the way a browser's unary plus
// does: blank text is 0, integer literals may carry a 0x/0o/0b prefix,
// "Infinity" keeps its sign, and anything unparsable is NaN.
func ToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			n, err := strconv.ParseUint(s, 0, 64)
			if err != nil || strings.Contains(s, "_") {
				return math.NaN()
			}
			return float64(n)
		}
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range literals saturate to ±Inf.
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	// strconv also accepts "inf" and "infinity" in any case.
	if math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}
