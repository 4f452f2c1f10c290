package model

import (
	"strconv"
	"strings"
)

// ParseScore converts raw user input to a score.
// The longest leading integer is used ("12abc" is 12, "3.7" is 3), a 0x
// prefix reads hex digits ("0x1A" is 26) and anything unparseable,
// including empty input, is 0.
func ParseScore(raw string) int {
	s := strings.TrimSpace(raw)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHex
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], base, strconv.IntSize)
	if err != nil {
		// Out of range for int
		return 0
	}
	if neg {
		n = -n
	}
	return int(n)
}

func isDecimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
