package uecp

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sigurn/crc16"

	"github.com/ftl/rds-encoder/com"
	"github.com/ftl/rds-encoder/rds"
)

// CRC-16-CCITT with preset 0xFFFF and inverted result [UECP] 2.2.6
var crcTable = crc16.MakeTable(crc16.CRC16_GENIBUS)

// CRC16 returns the checksum over the unstuffed frame fields from the address to the last element byte.
func CRC16(data []byte) uint16 {
	return crc16.Checksum(data, crcTable)
}

// Message is one message element.
type Message struct {
	MEC MEC
	DSN byte
	PSN byte
	// OmitLength leaves out the element length byte. Elements of fixed length have none.
	OmitLength bool
	Data       []byte
}

// NewMessage creates a message with the element length byte set according to the message element code.
func NewMessage(mec MEC, ch rds.Channel, data ...byte) *Message {
	return &Message{
		MEC:        mec,
		DSN:        ch.DSN,
		PSN:        ch.PSN,
		OmitLength: !mec.HasLength(),
		Data:       data,
	}
}

// Length returns the value of the message length field. A nil message has length 0.
func (m *Message) Length() int {
	if m == nil {
		return 0
	}
	result := 1 + len(m.Data)
	if !m.MEC.IsGlobal() {
		result += 2
	}
	if !m.OmitLength {
		result++
	}
	return result
}

func (m *Message) String() string {
	if m == nil {
		return "<empty>"
	}
	if m.MEC.IsGlobal() {
		return fmt.Sprintf("%v[%s]", m.MEC, com.BinaryToHex(m.Data))
	}
	return fmt.Sprintf("%v %d/%d[%s]", m.MEC, m.DSN, m.PSN, com.BinaryToHex(m.Data))
}

// Frame is one data frame. CRC is filled in by DecodeFrame and ignored by EncodeFrame.
type Frame struct {
	Address  uint16
	Sequence byte
	Message  *Message
	CRC      uint16
}

func (f Frame) String() string {
	site, encoder := SplitAddress(f.Address)
	return fmt.Sprintf("%d:%d/%d %v", site, encoder, f.Sequence, f.Message)
}

// Stuff escapes all bytes that must not appear between the start and the stop byte.
func Stuff(data []byte) []byte {
	result := make([]byte, 0, len(data)+len(data)/8)
	for _, b := range data {
		if b >= EscapeByte {
			result = append(result, EscapeByte, b-EscapeByte)
			continue
		}
		result = append(result, b)
	}
	return result
}

// Unstuff reverses Stuff.
func Unstuff(data []byte) ([]byte, error) {
	result := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case b == EscapeByte:
			if i+1 >= len(data) || data[i+1] > StopByte-EscapeByte {
				return nil, &StuffingError{Offset: i}
			}
			i++
			result = append(result, EscapeByte+data[i])
		case b > EscapeByte:
			return nil, &StuffingError{Offset: i}
		default:
			result = append(result, b)
		}
	}
	return result, nil
}

func encodeBody(f Frame) ([]byte, error) {
	msg := f.Message
	msgLen := msg.Length()
	if msg != nil {
		if !msg.MEC.Valid() {
			return nil, fmt.Errorf("message element code 0x%02X is reserved: %w", byte(msg.MEC), rds.ErrInvalidArgument)
		}
		if len(msg.Data) > MaxElementLength || msgLen > MaxMessageLength {
			return nil, fmt.Errorf("message with %d data bytes is too long: %w", len(msg.Data), rds.ErrInvalidArgument)
		}
	}

	result := make([]byte, 0, 6+msgLen)
	result = append(result, byte(f.Address>>8), byte(f.Address), f.Sequence, byte(msgLen))
	if msg != nil {
		result = append(result, byte(msg.MEC))
		if !msg.MEC.IsGlobal() {
			result = append(result, msg.DSN, msg.PSN)
		}
		if !msg.OmitLength {
			result = append(result, byte(len(msg.Data)))
		}
		result = append(result, msg.Data...)
	}

	crc := CRC16(result)
	result = append(result, byte(crc>>8), byte(crc))
	return result, nil
}

// EncodeFrame returns the wire bytes of the given frame, including the start and the stop byte.
func EncodeFrame(f Frame) ([]byte, error) {
	body, err := encodeBody(f)
	if err != nil {
		return nil, err
	}
	stuffed := Stuff(body)

	result := make([]byte, 0, len(stuffed)+2)
	result = append(result, StartByte)
	result = append(result, stuffed...)
	result = append(result, StopByte)
	return result, nil
}

// DecodeFrame decodes one frame as it is produced by EncodeFrame. Bytes following the stop byte are ignored.
func DecodeFrame(wire []byte) (Frame, error) {
	if len(wire) == 0 {
		return Frame{}, fmt.Errorf("empty frame: %w", io.ErrUnexpectedEOF)
	}
	if wire[0] != StartByte {
		return Frame{}, fmt.Errorf("frame starts with 0x%02X: %w", wire[0], rds.ErrProtocolViolation)
	}
	stop := bytes.IndexByte(wire[1:], StopByte)
	if stop == -1 {
		return Frame{}, fmt.Errorf("no stop byte: %w", io.ErrUnexpectedEOF)
	}
	body, err := Unstuff(wire[1 : stop+1])
	if err != nil {
		return Frame{}, err
	}
	return decodeBody(body)
}

func decodeBody(body []byte) (Frame, error) {
	if len(body) < 6 {
		return Frame{}, fmt.Errorf("frame has only %d bytes: %w", len(body), rds.ErrProtocolViolation)
	}
	msgLen := int(body[3])
	if len(body) != msgLen+6 {
		return Frame{}, fmt.Errorf("message length %d does not match the frame size %d: %w", msgLen, len(body), rds.ErrProtocolViolation)
	}

	end := len(body) - 2
	actual := uint16(body[end])<<8 | uint16(body[end+1])
	expected := CRC16(body[:end])
	if actual != expected {
		return Frame{}, &CRCError{Expected: expected, Actual: actual}
	}

	result := Frame{
		Address:  uint16(body[0])<<8 | uint16(body[1]),
		Sequence: body[2],
		CRC:      actual,
	}
	if msgLen == 0 {
		return result, nil
	}

	msg, err := decodeMessage(body[4:end])
	if err != nil {
		return Frame{}, err
	}
	result.Message = msg
	return result, nil
}

func decodeMessage(data []byte) (*Message, error) {
	mec := MEC(data[0])
	if !mec.Valid() {
		return nil, fmt.Errorf("message element code 0x%02X is reserved: %w", byte(mec), rds.ErrProtocolViolation)
	}
	result := &Message{MEC: mec, OmitLength: !mec.HasLength()}
	data = data[1:]

	if !mec.IsGlobal() {
		if len(data) < 2 {
			return nil, fmt.Errorf("%v: missing DSN and PSN: %w", mec, rds.ErrProtocolViolation)
		}
		result.DSN = data[0]
		result.PSN = data[1]
		data = data[2:]
	}
	if !result.OmitLength {
		if len(data) < 1 {
			return nil, fmt.Errorf("%v: missing element length: %w", mec, rds.ErrProtocolViolation)
		}
		if int(data[0]) != len(data)-1 {
			return nil, fmt.Errorf("%v: element length %d, but %d data bytes: %w", mec, data[0], len(data)-1, rds.ErrProtocolViolation)
		}
		data = data[1:]
	}
	result.Data = append([]byte(nil), data...)
	return result, nil
}

// StuffingError reports an invalid escape sequence or an unescaped reserved byte.
type StuffingError struct {
	Offset int
}

func (e *StuffingError) Error() string {
	return fmt.Sprintf("invalid byte stuffing at offset %d", e.Offset)
}

func (e *StuffingError) Unwrap() error {
	return rds.ErrProtocolViolation
}

// CRCError reports a frame whose CRC does not match its content.
type CRCError struct {
	Expected uint16
	Actual   uint16
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("CRC mismatch: expected %04X, got %04X", e.Expected, e.Actual)
}

func (e *CRCError) Unwrap() error {
	return rds.ErrProtocolViolation
}
