package rnokpp

import (
	"encoding/json"
	"time"
)

// RNOKPP is a read-only view of an identifier with its decoded fields
// computed once at construction.
type RNOKPP struct {
	ssn     string
	isValid bool
	sex     Sex
	dob     time.Time
}

// New decodes s into an RNOKPP value. Malformed input is an error; a bad
// check digit is not.
func New(s string) (*RNOKPP, error) {
	a, err := Analyze(s)
	if err != nil {
		return nil, err
	}
	return &RNOKPP{
		ssn:     a.ID.String(),
		isValid: a.IsValid,
		sex:     a.Sex,
		dob:     a.DateOfBirth,
	}, nil
}

// MustNew is New that panics on malformed input.
// Use only in tests or with literals known to be well formed.
func MustNew(s string) *RNOKPP {
	r, err := New(s)
	if err != nil {
		panic(err)
	}
	return r
}

// SSN returns the identifier digits.
func (r *RNOKPP) SSN() string { return r.ssn }

// IsValid reports whether the check digit matched.
func (r *RNOKPP) IsValid() bool { return r.isValid }

// Sex returns the encoded sex.
func (r *RNOKPP) Sex() Sex { return r.sex }

// DOB returns the date of birth as YYYY-MM-DD.
func (r *RNOKPP) DOB() string { return FormatDate(r.dob) }

// DateOfBirth returns the date of birth at UTC midnight.
func (r *RNOKPP) DateOfBirth() time.Time { return r.dob }

// String returns the display label, e.g. "3013753530 RNOKPP".
func (r *RNOKPP) String() string { return r.ssn + " RNOKPP" }

type rnokppJSON struct {
	SSN     string `json:"ssn"`
	IsValid bool   `json:"is_valid"`
	Sex     Sex    `json:"sex"`
	DOB     string `json:"dob"`
}

// MarshalJSON emits {"ssn","is_valid","sex","dob"}.
func (r *RNOKPP) MarshalJSON() ([]byte, error) {
	return json.Marshal(rnokppJSON{
		SSN:     r.ssn,
		IsValid: r.isValid,
		Sex:     r.sex,
		DOB:     r.DOB(),
	})
}
