package rds

import "strings"

// ReplicateRadioText fills a buffer of the given capacity with as many copies of text as fit, each followed by gap spaces.
// If less than two copies fit, the text is returned unmodified.
func ReplicateRadioText(text string, capacity int, gap int) string {
	segmentSize := len(text) + gap
	if segmentSize <= 0 {
		return text
	}
	times := capacity / segmentSize
	if times < 2 {
		return text
	}

	segment := text + strings.Repeat(" ", gap)
	result := strings.Repeat(segment, times)
	return result + strings.Repeat(" ", capacity-len(result))
}
