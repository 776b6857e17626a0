package rnokpp

import (
	"strings"

	"golang.org/x/text/cases"
)

// Sex is the value encoded by the parity of digit 8.
type Sex int

const (
	// SexUnspecified selects either parity when generating.
	SexUnspecified Sex = iota
	Male
	Female
)

// Tokens accepted by ParseSex, compared after Unicode case folding.
var sexTokens = map[string]Sex{
	"m":        Male,
	"male":     Male,
	"ч":        Male,
	"чоловіча": Male,
	"f":        Female,
	"female":   Female,
	"ж":        Female,
	"жіноча":   Female,
}

// ParseSex normalizes a caller-supplied token. Unknown tokens, including
// the empty string, yield SexUnspecified rather than an error.
func ParseSex(token string) Sex {
	// A Caser is stateful; build one per call.
	key := cases.Fold().String(strings.TrimSpace(token))
	if s, ok := sexTokens[key]; ok {
		return s
	}
	return SexUnspecified
}

// sexFromDigit applies the parity rule.
func sexFromDigit(d int) Sex {
	if d%2 == 1 {
		return Male
	}
	return Female
}

// String returns "Male", "Female" or "Unspecified".
func (s Sex) String() string {
	switch s {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return "Unspecified"
	}
}

// Code returns the single-letter form: "M", "F", or "" when unspecified.
func (s Sex) Code() string {
	switch s {
	case Male:
		return "M"
	case Female:
		return "F"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Sex) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with ParseSex semantics.
func (s *Sex) UnmarshalText(text []byte) error {
	*s = ParseSex(string(text))
	return nil
}
