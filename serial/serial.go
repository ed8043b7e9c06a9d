package serial

import (
	"errors"
	"io"
	"time"

	"github.com/jacobsa/go-serial/serial"

	"github.com/ftl/rds-encoder/com"
)

var (
	ErrNoEncoderFound = errors.New("no RDS encoder device found")
)

// Config describes the serial line of an encoder unit. Encoders use 8N1 without flow control.
type Config struct {
	PortName string
	BaudRate uint
	Timeout  time.Duration
}

// DefaultConfig returns the line settings most encoder units ship with.
func DefaultConfig(portName string) Config {
	return Config{
		PortName: portName,
		BaudRate: 9600,
		Timeout:  com.DefaultTimeout,
	}
}

func Open(config Config) (*com.COM, error) {
	device, err := openSerial(config)
	if err != nil {
		return nil, err
	}

	result := com.New(device)
	setTimeout(result, config)
	return result, nil
}

func OpenWithTrace(config Config, traceWriter io.Writer) (*com.COM, error) {
	device, err := openSerial(config)
	if err != nil {
		return nil, err
	}

	result := com.NewWithTrace(device, traceWriter)
	setTimeout(result, config)
	return result, nil
}

func setTimeout(c *com.COM, config Config) {
	if config.Timeout > 0 {
		c.SetTimeout(config.Timeout)
	}
}

func openSerial(config Config) (io.ReadWriteCloser, error) {
	baudRate := config.BaudRate
	if baudRate == 0 {
		baudRate = 9600
	}
	portConfig := serial.OpenOptions{
		PortName:              config.PortName,
		BaudRate:              baudRate,
		DataBits:              8,
		StopBits:              1,
		ParityMode:            serial.PARITY_NONE,
		RTSCTSFlowControl:     false,
		MinimumReadSize:       1,
		InterCharacterTimeout: 100,
	}

	return serial.Open(portConfig)
}
