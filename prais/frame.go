package prais

import (
	"fmt"

	"github.com/ftl/rds-encoder/com"
	"github.com/ftl/rds-encoder/rds"
)

// Message is the payload of a frame.
type Message struct {
	Type MessageType
	Data []byte
}

func (m Message) String() string {
	return fmt.Sprintf("%v[%s]", m.Type, com.BinaryToHex(m.Data))
}

// Frame is one data frame as it is exchanged with a unit.
type Frame struct {
	Address  uint16
	Sequence byte
	NoReply  bool
	Message
}

func (f Frame) String() string {
	noReply := ""
	if f.NoReply {
		noReply = " no-reply"
	}
	return fmt.Sprintf("%04X/%d%s %v", f.Address, f.Sequence, noReply, f.Message)
}

// AckSequence is sent by the host after it accepted a reply frame.
var AckSequence = []byte{SYN, SYN, ACK, SYN, 0x00}

// Checksum is the sum of type, length and all data bytes, including the DLE escapes, cut to one byte.
func Checksum(msg Message) byte {
	var sum uint16
	sum += uint16(msg.Type)
	sum += uint16(len(msg.Data))
	for _, b := range msg.Data {
		if b == DLE {
			sum += uint16(DLE)
		}
		sum += uint16(b)
	}
	return byte(sum & 0xFF)
}

// checksumDigit maps one nibble to the ASCII character the unit expects. The unit's letter mapping is n%10+'A';
// for n < 16 this yields the uppercase hex digits, it must not be replaced by a general hex encoder.
func checksumDigit(n byte) byte {
	if n >= 10 {
		return (n % 10) + 'A'
	}
	return n + '0'
}

func digitValue(c byte) byte {
	switch {
	case c >= 'A':
		c = c - 'A' + 0xA
	case c >= '0':
		c = c - '0'
	}
	return c & 0x0F
}

// CheckAddress rejects unit addresses that carry the no-reply flag. Only the broadcast address may have it set.
func CheckAddress(address uint16) error {
	if address&NoReplyFlag != 0 && address != BroadcastAddress {
		return fmt.Errorf("unit address 0x%04X has the no-reply flag set: %w", address, rds.ErrInvalidArgument)
	}
	return nil
}

// EncodeFrame returns the wire bytes of the given frame. The post-amble of no-reply frames is not included.
func EncodeFrame(f Frame) ([]byte, error) {
	if err := CheckAddress(f.Address); err != nil {
		return nil, err
	}
	if f.Type > MaxMessageType {
		return nil, fmt.Errorf("message type 0x%02X out of range: %w", byte(f.Type), rds.ErrInvalidArgument)
	}
	if len(f.Data) > MaxDataLength {
		return nil, fmt.Errorf("message has %d data bytes, at most %d are allowed: %w", len(f.Data), MaxDataLength, rds.ErrInvalidArgument)
	}
	if f.Sequence > 9 {
		return nil, fmt.Errorf("sequence number %d out of range: %w", f.Sequence, rds.ErrInvalidArgument)
	}

	address := f.Address
	if f.NoReply {
		address |= NoReplyFlag
	}
	checksum := Checksum(f.Message)

	result := make([]byte, 0, 16+2*len(f.Data))
	result = append(result, SYN, SYN, SOH)
	result = append(result, byte(address>>8), byte(address))
	result = append(result, '0'+f.Sequence)
	result = append(result, DLE, STX)
	result = append(result, byte(f.Type), byte(len(f.Data)))
	for _, b := range f.Data {
		if b == DLE {
			result = append(result, DLE)
		}
		result = append(result, b)
	}
	result = append(result, DLE, ETX)
	result = append(result, checksumDigit(checksum>>4), checksumDigit(checksum&0x0F))
	result = append(result, SYN)
	return result, nil
}

// ProtocolError reports an unexpected byte while decoding.
type ProtocolError struct {
	State State
	Got   byte
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected byte 0x%02X in state %v", e.Got, e.State)
}

func (e *ProtocolError) Unwrap() error {
	return rds.ErrProtocolViolation
}

// ChecksumError reports a frame whose checksum does not match its content.
type ChecksumError struct {
	Expected byte
	Actual   byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %02X, got %02X", e.Expected, e.Actual)
}

func (e *ChecksumError) Unwrap() error {
	return rds.ErrProtocolViolation
}
