// Package pseudohex implements the Cepheus Engine pseudo-hexadecimal
// notation used to display attribute scores: 0-9 stay decimal digits,
// 10-15 become A-F, and 16+ stay plain decimal.
package pseudohex

import (
	"strconv"
	"strings"

	cerrors "github.com/lgw4/cetools/internal/errors"
)

// FromInt converts a decimal value to pseudo-hex notation.
func FromInt(value int) (string, error) {
	if value < 0 {
		return "", cerrors.InvalidArgumentf("cannot convert negative value %d to pseudo-hex", value)
	}
	if value <= 9 {
		return strconv.Itoa(value), nil
	}
	if value <= 15 {
		return string(rune('A' + (value - 10))), nil
	}
	return strconv.Itoa(value), nil
}

// ToInt converts a pseudo-hex string back to its decimal value.
func ToInt(value string) (int, error) {
	v := strings.ToUpper(strings.TrimSpace(value))

	if len(v) == 1 && v[0] >= 'A' && v[0] <= 'F' {
		return int(v[0]-'A') + 10, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, cerrors.InvalidArgumentf("invalid pseudo-hex value: %s", value)
	}
	return n, nil
}

// IsValid reports whether the string is valid pseudo-hex notation.
func IsValid(value string) bool {
	if value == "" {
		return false
	}
	_, err := ToInt(value)
	return err == nil
}

// Normalize converts a string that may be decimal, 0x-prefixed hex, or
// pseudo-hex into canonical pseudo-hex notation.
func Normalize(value string) (string, error) {
	if strings.HasPrefix(strings.ToLower(value), "0x") {
		if n, err := strconv.ParseInt(value[2:], 16, 64); err == nil {
			return FromInt(int(n))
		}
	}

	if IsValid(value) {
		// Single A-F characters normalize to upper case; numeric strings
		// are already in the on-disk format and pass through untouched.
		if len(value) == 1 {
			upper := strings.ToUpper(value)
			if upper[0] >= 'A' && upper[0] <= 'F' {
				return upper, nil
			}
		}
		return value, nil
	}

	return "", cerrors.InvalidArgumentf("cannot normalize value to pseudo-hex: %s", value)
}

// NormalizeInt converts a decimal value straight to canonical pseudo-hex.
func NormalizeInt(value int) (string, error) {
	return FromInt(value)
}
