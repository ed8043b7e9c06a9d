package rds

import (
	"errors"

	"github.com/ftl/rds-encoder/com"
)

var (
	ErrProtocolViolation = errors.New("protocol violation")
	ErrTimeout           = com.ErrTimeout
	ErrUnsupported       = errors.New("operation not supported")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrIO                = com.ErrIO
	ErrBusy              = errors.New("encoder busy")
)

// Flags describe hardware specific features of an encoder.
type Flags uint16

const (
	// HardwareDynamicPS marks units that rotate several PS names on their own (e.g. Prais coder mod. 735).
	HardwareDynamicPS Flags = 0x01
)

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Channel selects the data set and programme service an operation refers to, according to [UECP] 2.2.
type Channel struct {
	DSN byte
	PSN byte
}

// DefaultChannel addresses the current data set and the main programme service.
var DefaultChannel = Channel{}

func (c Channel) IsDefault() bool {
	return c.DSN == 0 && c.PSN == 0
}
