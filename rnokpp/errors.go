package rnokpp

import "github.com/teranos/rnokpp/errors"

// Error kinds returned by this package. Returned errors wrap one of these;
// test with errors.Is.
var (
	// ErrInvalidFormat: the input is not exactly 10 ASCII digits.
	ErrInvalidFormat = errors.New("invalid identifier format")

	// ErrDateRange: a date or day offset cannot be encoded in five digits
	// counted from the epoch.
	ErrDateRange = errors.New("date out of range")

	// ErrInvalidParameter: a supplied parameter (date string) could not be parsed.
	ErrInvalidParameter = errors.New("invalid parameter")
)

func invalidFormat(format string, args ...interface{}) error {
	err := errors.Wrapf(ErrInvalidFormat, format, args...)
	err = errors.WithHint(err, "an RNOKPP is exactly 10 digits, e.g. 3013753530")
	return errors.Mark(err, errors.ErrInvalidRequest)
}

func invalidParameter(err error, format string, args ...interface{}) error {
	wrapped := errors.Wrapf(ErrInvalidParameter, format, args...)
	if err != nil {
		wrapped = errors.WithDetail(wrapped, err.Error())
	}
	wrapped = errors.WithHint(wrapped, "use an ISO date such as 2000-01-01")
	return errors.Mark(wrapped, errors.ErrInvalidRequest)
}

func dateRange(format string, args ...interface{}) error {
	err := errors.Wrapf(ErrDateRange, format, args...)
	err = errors.WithHintf(err, "dates of birth must fall between %s and %s",
		FormatDate(Epoch), FormatDate(Epoch.AddDate(0, 0, MaxDayOffset)))
	return errors.Mark(err, errors.ErrInvalidRequest)
}
