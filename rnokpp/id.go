package rnokpp

import "github.com/teranos/rnokpp/logger"

// Length is the number of digits in an identifier.
const Length = 10

// Digit positions within an identifier.
const (
	dobStart    = 0
	dobEnd      = 5 // exclusive
	fillerStart = 5
	sexPos      = 8
	checkPos    = 9
)

// ID is a structurally valid identifier: exactly 10 ASCII digits.
// The check digit is not verified at construction.
type ID [Length]byte

// Parse validates the structure of s and returns it as an ID.
func Parse(s string) (ID, error) {
	var id ID
	if len(s) != Length {
		return id, invalidFormat("expected %d digits, got %d characters", Length, len(s))
	}
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return id, invalidFormat("non-digit %q at position %d", rune(c), i)
		}
		id[i] = c
	}
	return id, nil
}

// MustParse is Parse that panics on malformed input.
// Use only in tests or with literals known to be well formed.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the 10-digit form.
func (id ID) String() string { return string(id[:]) }

// Digit returns the numeric value of the digit at position i.
func (id ID) Digit(i int) int { return int(id[i] - '0') }

// DayOffset returns the day count encoded in positions 0-4.
func (id ID) DayOffset() int {
	n := 0
	for i := dobStart; i < dobEnd; i++ {
		n = n*10 + id.Digit(i)
	}
	return n
}

// CheckDigit returns the digit stored at position 9.
func (id ID) CheckDigit() int { return id.Digit(checkPos) }

// Masked hides the date and filler digits, for log lines.
func (id ID) Masked() string {
	return logger.MaskSSN(id.String())
}
