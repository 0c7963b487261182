package args

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// atoi parses the longest leading integer of s, after optional spaces and a
// sign. Text without digits yields 0. Out of range values saturate at
// math.MaxInt64 or math.MinInt64.
func atoi(s string) int64 {
	i := skipSpace(s, 0)
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	var n uint64
	for ; i < len(s) && isDigit(s[i]); i++ {
		d := uint64(s[i] - '0')
		if n > (limit-d)/10 {
			n = limit
			continue
		}
		n = n*10 + d
	}
	if neg {
		return -int64(n)
	}
	return int64(n)
}

// atof parses the longest leading decimal float of s, 0 when there is none.
func atof(s string) float64 {
	start := skipSpace(s, 0)
	i := start
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if n := matchWord(s[i:]); n > 0 {
		v, err := strconv.ParseFloat(s[start:i+n], 64)
		if err != nil {
			return 0
		}
		return v
	}

	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		// out of range still carries the signed infinity or zero
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return 0
	}
	return v
}

// matchWord reports the length of a leading "inf", "infinity" or "nan".
func matchWord(s string) int {
	for _, w := range []string{"infinity", "inf", "nan"} {
		if len(s) >= len(w) && strings.EqualFold(s[:len(w)], w) {
			return len(w)
		}
	}
	return 0
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || (s[i] >= '\t' && s[i] <= '\r')) {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
