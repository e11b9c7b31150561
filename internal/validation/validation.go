// Package validation contains the pure input validators for profile, post
// and auth submissions. Validators never touch the data store: they map a
// raw field bag to a field->message error map and a validity flag.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Result is the outcome of validating an input. IsValid is true iff Errors
// is empty.
type Result struct {
	Errors  map[string]string `json:"errors"`
	IsValid bool              `json:"isValid"`
}

func newResult(errs map[string]string) Result {
	return Result{Errors: errs, IsValid: len(errs) == 0}
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Accepts optional scheme, a dotted host and an optional path, in the
	// spirit of validator.js isURL.
	urlRegex = regexp.MustCompile(`^(?i)(https?://)?([a-z0-9-]+\.)+[a-z]{2,}(:\d+)?(/\S*)?$`)
)

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// IsURL reports whether s looks like a well-formed URL.
func IsURL(s string) bool {
	return urlRegex.MatchString(s)
}

// IsEmail reports whether s looks like a valid email address.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// requireURL records "Not a valid url" for non-empty values that do not
// parse as URLs. Empty optional fields pass.
func requireURL(errs map[string]string, field, value string) {
	if !isEmpty(value) && !IsURL(value) {
		errs[field] = "Not a valid url"
	}
}
