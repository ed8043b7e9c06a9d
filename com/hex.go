package com

import (
	"encoding/hex"
	"regexp"
	"strings"
)

var hexSanitizer = regexp.MustCompile(`[\s:]+`)

// HexToBinary converts a hex dump of wire bytes, as written to traces and logs, into a slice of bytes.
// Whitespace and colons between the digits are ignored.
func HexToBinary(s string) ([]byte, error) {
	sanitized := hexSanitizer.ReplaceAllString(s, "")
	return hex.DecodeString(sanitized)
}

// BinaryToHex converts wire bytes into the hex representation used in traces and logs.
func BinaryToHex(bytes []byte) string {
	return strings.ToUpper(hex.EncodeToString(bytes))
}
