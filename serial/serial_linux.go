//go:build linux

package serial

import (
	"strings"

	"github.com/hedhyw/Go-Serial-Detector/pkg/v1/serialdet"
)

// FindEncoderPortName returns the path of the first serial device whose description contains the given keyword.
func FindEncoderPortName(keyword string) (string, error) {
	devices, err := serialdet.List()
	if err != nil {
		return "", err
	}

	keyword = strings.ToLower(keyword)
	for _, device := range devices {
		description := strings.ToLower(device.Description())
		if strings.Contains(description, keyword) {
			return device.Path(), nil
		}
	}

	return "", ErrNoEncoderFound
}
