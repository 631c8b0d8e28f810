package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// SanitizeText trims the input and strips any markup or script content.
// Submitted free text later renders in the admin panel and in
// notification emails, so it is neutralized at the point of intake.
func SanitizeText(s string) string {
	return strict.Sanitize(strings.TrimSpace(s))
}
