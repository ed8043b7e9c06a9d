package rds

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// encoders only accept printable ASCII in text fields
var nonPrintable = runes.Predicate(func(r rune) bool {
	return r < ' ' || r > '~'
})

var textSanitizer = runes.If(nonPrintable, runes.Map(func(rune) rune { return ' ' }), nil)

// SanitizeText replaces every character that is not printable ASCII with a space and truncates the result to maxLen characters.
func SanitizeText(s string, maxLen int) string {
	result, _, err := transform.String(textSanitizer, s)
	if err != nil {
		result = strings.Repeat(" ", len([]rune(s)))
	}
	if len(result) > maxLen {
		result = result[:maxLen]
	}
	return result
}

// PadText sanitizes the given text and pads it with spaces to exactly length characters.
func PadText(s string, length int) string {
	result := SanitizeText(s, length)
	if len(result) < length {
		result += strings.Repeat(" ", length-len(result))
	}
	return result
}
