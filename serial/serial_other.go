//go:build !linux

package serial

func FindEncoderPortName(keyword string) (string, error) {
	// no-op for other OSes
	return "", ErrNoEncoderFound
}
