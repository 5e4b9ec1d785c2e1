// Package validate holds the per-question input predicates of the
// calculator form. Each rule either returns the normalized value or an
// error; the form re-prompts on error and never advances.
package validate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrNotInteger rejects input that is not a plain non-negative integer.
	ErrNotInteger = errors.New("not a whole number")
	// ErrNotNumber rejects input that does not parse as a number.
	ErrNotNumber = errors.New("not a number")
	// ErrNotPositive rejects zero or negative values where a positive one
	// is required.
	ErrNotPositive = errors.New("must be positive")
	// ErrNegative rejects negative values where zero is allowed.
	ErrNegative = errors.New("must not be negative")
	// ErrBadINN rejects tax identifiers that are not 10 or 12 digits.
	ErrBadINN = errors.New("INN must be 10 or 12 digits")
)

// digitsOnly mirrors the classic isdigit check: no sign, no spaces, no
// decimal point.
var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// Count parses a non-negative integer count (HR specialists and similar).
func Count(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !digitsOnly.MatchString(s) {
		return 0, ErrNotInteger
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotInteger
	}
	return n, nil
}

// EmployeeCount parses the employee headcount; zero is not a company.
func EmployeeCount(s string) (int, error) {
	n, err := Count(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, ErrNotPositive
	}
	return n, nil
}

// Decimal parses a number, accepting both '.' and ',' as the decimal
// separator, normalized to '.'.
func Decimal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNotNumber
	}
	return v, nil
}

// PositiveDecimal parses a number that must be strictly greater than
// zero (documents per employee).
func PositiveDecimal(s string) (float64, error) {
	v, err := Decimal(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, ErrNotPositive
	}
	return v, nil
}

// NonNegativeDecimal parses a number that may be zero but not negative
// (courier delivery cost).
func NonNegativeDecimal(s string) (float64, error) {
	v, err := Decimal(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ErrNegative
	}
	return v, nil
}

// Percent parses a percentage, tolerating a trailing '%' and surrounding
// whitespace. Values above 100 are accepted: turnover above 100% is a
// real thing in some companies.
func Percent(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	v, err := Decimal(s)
	if err != nil {
		return 0, ErrNotNumber
	}
	if v < 0 {
		return 0, ErrNegative
	}
	return v, nil
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// Email normalizes an email address, returning "" for anything that does
// not look like one. An invalid address never blocks the lead flow; the
// CRM just gets an empty field.
func Email(s string) string {
	s = strings.TrimSpace(s)
	if !emailRe.MatchString(s) {
		return ""
	}
	return s
}

// INN validates a Russian tax identifier: exactly 10 or 12 digits.
func INN(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !digitsOnly.MatchString(s) {
		return "", ErrBadINN
	}
	if len(s) != 10 && len(s) != 12 {
		return "", ErrBadINN
	}
	return s, nil
}
