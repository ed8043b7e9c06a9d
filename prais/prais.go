package prais

import "fmt"

// Data link control characters
const (
	SYN byte = 0x16
	SOH byte = 0x01
	ACK byte = 0x06
	DLE byte = 0x10
	STX byte = 0x02
	ETX byte = 0x03
)

const (
	// BroadcastAddress addresses all units on the line. Broadcast frames are never answered.
	BroadcastAddress uint16 = 0xFFFF
	// NoReplyFlag is set in the address field of frames that must not be answered.
	NoReplyFlag uint16 = 0x8000
	// MaxDataLength is the maximum number of data bytes in one message.
	MaxDataLength = 40
	// PostambleLength is the number of ETX bytes sent after a frame without reply, to give the unit time to process it.
	PostambleLength = 64
	// ProtocolName is used in logs and metrics.
	ProtocolName = "prais"
)

// MessageType enum
type MessageType byte

// All defined message types
const (
	Reset        MessageType = 0x00
	RDSOn        MessageType = 0x01
	LockStatus   MessageType = 0x02
	TAMSDI       MessageType = 0x03
	UnitMessage  MessageType = 0x04
	AF           MessageType = 0x05
	Store        MessageType = 0x06
	SerialNumber MessageType = 0x08
	PI           MessageType = 0x09
	PS           MessageType = 0x0A
	RTC          MessageType = 0x0B
	PTY          MessageType = 0x0C
	TDC          MessageType = 0x0D
	IH           MessageType = 0x0E
	RT           MessageType = 0x0F

	MaxMessageType = RT
)

var messageTypeNames = map[MessageType]string{
	Reset:        "RESET",
	RDSOn:        "RDSON",
	LockStatus:   "LOCK_STATUS",
	TAMSDI:       "TAMSDI",
	UnitMessage:  "UNITMSG",
	AF:           "AF",
	Store:        "STORE",
	SerialNumber: "SERIAL_NUM",
	PI:           "PI",
	PS:           "PS",
	RTC:          "RTC",
	PTY:          "PTY",
	TDC:          "TDC",
	IH:           "IH",
	RT:           "RT",
}

func (t MessageType) String() string {
	name, ok := messageTypeNames[t]
	if !ok {
		return fmt.Sprintf("type(0x%02X)", byte(t))
	}
	return name
}
