package errors

import (
	"regexp"
	"strings"
	"unicode"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor checks that c is a "#rgb" or "#rrggbb" hex color.
func ValidateColor(c string) error {
	if !hexColor.MatchString(c) {
		return New(ErrCodeInvalidColor, "not a hex color: %q", c)
	}
	return nil
}

// ValidateFontFamily checks that a font family name is usable in SVG and CSS.
//
// Rules:
//   - Not empty
//   - At most 128 characters
//   - No control characters
//   - No quotes, angle brackets, semicolons or braces
func ValidateFontFamily(f string) error {
	if strings.TrimSpace(f) == "" {
		return New(ErrCodeInvalidTheme, "font family cannot be empty")
	}
	if len(f) > 128 {
		return New(ErrCodeInvalidTheme, "font family too long (max 128 characters)")
	}
	for _, r := range f {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTheme, "font family contains control characters")
		}
	}
	if strings.ContainsAny(f, `"'<>;{}`) {
		return New(ErrCodeInvalidTheme, "font family contains invalid characters: %q", f)
	}
	return nil
}

// ValidateOneOf checks that v is one of allowed, returning an error with the
// given code otherwise.
func ValidateOneOf(code Code, what, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return New(code, "invalid %s: %q (must be one of %s)", what, v, strings.Join(allowed, ", "))
}
