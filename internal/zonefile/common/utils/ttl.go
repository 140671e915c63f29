package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// unit multipliers for zone-file time values (RFC 1035 extended syntax).
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerWeek   = 7 * secondsPerDay
)

// ParseTTL converts a zone-file time value into seconds. Accepts a bare
// non-negative integer or an integer with a single unit suffix
// (s, m, h, d, w, case-insensitive), e.g. "3600", "30m", "1H", "2w".
func ParseTTL(s string) (uint32, error) {
	if s == "" {
		return 0, fmt.Errorf("empty time value")
	}

	mult := uint64(1)
	digits := s
	switch last := s[len(s)-1]; last {
	case 's', 'S':
		digits = s[:len(s)-1]
	case 'm', 'M':
		mult = secondsPerMinute
		digits = s[:len(s)-1]
	case 'h', 'H':
		mult = secondsPerHour
		digits = s[:len(s)-1]
	case 'd', 'D':
		mult = secondsPerDay
		digits = s[:len(s)-1]
	case 'w', 'W':
		mult = secondsPerWeek
		digits = s[:len(s)-1]
	}

	val, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid time value %q", s)
	}

	total := val * mult
	if total > 1<<32-1 {
		return 0, fmt.Errorf("time value %q exceeds 32 bits", s)
	}
	return uint32(total), nil
}

// IsTTLToken reports whether a token is shaped like a zone-file time value.
// Used by the parser to disambiguate the optional TTL position from the class
// and type mnemonics.
func IsTTLToken(s string) bool {
	if s == "" {
		return false
	}
	// A bare unit letter ("m", "h") is not a time value.
	if !strings.ContainsAny(s[:1], "0123456789") {
		return false
	}
	_, err := ParseTTL(s)
	return err == nil
}
