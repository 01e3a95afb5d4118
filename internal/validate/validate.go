package validate

import (
	"regexp"
	"strings"
)

// Problem text length bounds, enforced server-side after sanitization.
const (
	MinProblemLength = 10
	MaxProblemLength = 5000

	// maxInputLength is the hard ceiling applied before validation.
	maxInputLength = 10000
)

// emailRegex is the same shape check the submission form applies client-side.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Error is a validation failure suitable for returning to the caller verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrFieldsRequired  = &Error{Message: "Email and problem are required"}
	ErrInvalidEmail    = &Error{Message: "Invalid email format"}
	ErrProblemTooShort = &Error{Message: "Problem description too short (min 10 characters)"}
	ErrProblemTooLong  = &Error{Message: "Problem description too long (max 5000 characters)"}
	ErrInvalidStatus   = &Error{Message: "Invalid status"}
)

// Email reports whether s has a basic local@domain.tld shape.
func Email(s string) bool {
	return emailRegex.MatchString(s)
}

// Sanitize trims surrounding whitespace and truncates to the input ceiling.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxInputLength {
		return string(r[:maxInputLength])
	}
	return s
}

// NormalizeEmail returns the canonical stored form of an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(Sanitize(s))
}

// Problem checks the length bounds of sanitized problem text.
func Problem(text string) error {
	n := len([]rune(text))
	if n < MinProblemLength {
		return ErrProblemTooShort
	}
	if n > MaxProblemLength {
		return ErrProblemTooLong
	}
	return nil
}

// Status checks the value against the problem status enum.
func Status(s string) error {
	if s != "pending" && s != "resolved" {
		return ErrInvalidStatus
	}
	return nil
}
