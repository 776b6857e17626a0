package rnokpp

import (
	"encoding/json"
	"time"
)

// Analysis holds the fields decoded from an identifier. It is computed on
// demand and never cached.
type Analysis struct {
	ID          ID
	IsValid     bool
	Sex         Sex
	DateOfBirth time.Time
}

// Analyze parses s and decodes it. A checksum mismatch is reported via
// IsValid; the error is non-nil only for malformed input.
func Analyze(s string) (Analysis, error) {
	id, err := Parse(s)
	if err != nil {
		return Analysis{}, err
	}
	return id.Analyze()
}

// Analyze decodes validity, sex and date of birth from id.
func (id ID) Analyze() (Analysis, error) {
	dob, err := DateFromOffset(id.DayOffset())
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{
		ID:          id,
		IsValid:     id.Valid(),
		Sex:         sexFromDigit(id.Digit(sexPos)),
		DateOfBirth: dob,
	}, nil
}

// DOB returns the date of birth as YYYY-MM-DD.
func (a Analysis) DOB() string { return FormatDate(a.DateOfBirth) }

type analysisJSON struct {
	SSN         string `json:"ssn"`
	IsValid     bool   `json:"is_valid"`
	Sex         Sex    `json:"sex"`
	DateOfBirth string `json:"date_of_birth"`
}

// MarshalJSON emits the ISO date form.
func (a Analysis) MarshalJSON() ([]byte, error) {
	return json.Marshal(analysisJSON{
		SSN:         a.ID.String(),
		IsValid:     a.IsValid,
		Sex:         a.Sex,
		DateOfBirth: a.DOB(),
	})
}
