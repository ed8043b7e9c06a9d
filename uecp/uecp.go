package uecp

import (
	"fmt"

	"github.com/ftl/rds-encoder/rds"
)

// Frame delimiters and the stuffing escape [UECP] 2.2.1
const (
	StartByte  byte = 0xFE
	StopByte   byte = 0xFF
	EscapeByte byte = 0xFD
)

const (
	// MaxMessageLength is the largest value of the message length field.
	MaxMessageLength = 255
	// MaxElementLength is the largest number of element data bytes in one message.
	MaxElementLength = MaxMessageLength - 1
	// MaxSiteAddress is the largest site address.
	MaxSiteAddress = 1023
	// MaxEncoderAddress is the largest encoder address.
	MaxEncoderAddress = 63
	// BroadcastAddress addresses all encoders on all sites.
	BroadcastAddress uint16 = 0
	// ProtocolName is used in logs and metrics.
	ProtocolName = "uecp"
)

// Address combines the site address (bits 15-6) and the encoder address (bits 5-0).
func Address(site uint16, encoder byte) (uint16, error) {
	if site > MaxSiteAddress {
		return 0, fmt.Errorf("site address %d out of range [0, %d]: %w", site, MaxSiteAddress, rds.ErrInvalidArgument)
	}
	if encoder > MaxEncoderAddress {
		return 0, fmt.Errorf("encoder address %d out of range [0, %d]: %w", encoder, MaxEncoderAddress, rds.ErrInvalidArgument)
	}
	return site<<6 | uint16(encoder), nil
}

// SplitAddress returns the site and the encoder address.
func SplitAddress(address uint16) (uint16, byte) {
	return address >> 6, byte(address & 0x3F)
}

// MEC is the message element code [UECP] 3.
type MEC byte

// All supported message element codes
const (
	PI                MEC = 0x01
	PS                MEC = 0x02
	TATP              MEC = 0x03
	DIPTYI            MEC = 0x04
	MS                MEC = 0x05
	PIN               MEC = 0x06
	PTY               MEC = 0x07
	RT                MEC = 0x0A
	PSNEnable         MEC = 0x0B
	RTC               MEC = 0x0D
	MessageRequest    MEC = 0x17
	MessageAck        MEC = 0x18
	CT                MEC = 0x19
	DSNSelect         MEC = 0x1C
	RDSOn             MEC = 0x1E
	SiteAddress       MEC = 0x23
	EncoderAddress    MEC = 0x27
	CommunicationMode MEC = 0x2C
	PTYN              MEC = 0x3E
)

var mecNames = map[MEC]string{
	PI:                "PI",
	PS:                "PS",
	TATP:              "TA_TP",
	DIPTYI:            "DI_PTYI",
	MS:                "MS",
	PIN:               "PIN",
	PTY:               "PTY",
	RT:                "RT",
	PSNEnable:         "PSN_ENABLE",
	RTC:               "RTC",
	MessageRequest:    "MSG_REQUEST",
	MessageAck:        "MSG_ACK",
	CT:                "CT",
	DSNSelect:         "DSN_SELECT",
	RDSOn:             "RDSON",
	SiteAddress:       "SET_SITE_ADDR",
	EncoderAddress:    "SET_ENC_ADDR",
	CommunicationMode: "SET_COMM_MODE",
	PTYN:              "PTYN",
}

func (m MEC) String() string {
	name, ok := mecNames[m]
	if !ok {
		return fmt.Sprintf("mec(0x%02X)", byte(m))
	}
	return name
}

// Valid reports if the code is in the range of usable element codes. 0x00, 0xFE and 0xFF are reserved.
func (m MEC) Valid() bool {
	return m >= 0x01 && m <= 0xFD
}

// IsGlobal reports if the element applies to the encoder as a whole. Global elements carry no DSN and PSN.
func (m MEC) IsGlobal() bool {
	switch m {
	case RTC, CT, DSNSelect, RDSOn, SiteAddress, EncoderAddress, CommunicationMode:
		return true
	default:
		return false
	}
}

// HasLength reports if the element carries an element length byte.
func (m MEC) HasLength() bool {
	switch m {
	case RT, MessageRequest:
		return true
	default:
		return false
	}
}

// Communication modes [UECP] 3.3.44
const (
	Unidirectional           byte = 0
	BidirectionalOnRequest   byte = 1
	BidirectionalSpontaneous byte = 2
)
