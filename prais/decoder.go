package prais

import (
	"context"
	"fmt"
	"io"

	"github.com/ftl/rds-encoder/com"
)

// State of the decoder
type State byte

// All decoder states. WaitSyn to ExpectEmptyOrFrame only occur in replies, FrameStart only in bare frames.
const (
	WaitSyn State = iota
	SkipExtraSyns
	ExpectAck
	ExpectSynAfterAck
	ExpectEmptyOrFrame
	FrameStart
	HeaderSyn
	HeaderSoh
	HeaderAddrHi
	HeaderAddrLo
	HeaderSeq
	ExpectDleStx
	ExpectStx
	ReadType
	ReadLen
	ReadData
	ReadEscaped
	ExpectDleEtx
	ExpectEtx
	ReadChecksum
	ExpectTrailingSyn
	Done
)

var stateNames = []string{
	"WaitSyn",
	"SkipExtraSyns",
	"ExpectAck",
	"ExpectSynAfterAck",
	"ExpectEmptyOrFrame",
	"FrameStart",
	"HeaderSyn",
	"HeaderSoh",
	"HeaderAddrHi",
	"HeaderAddrLo",
	"HeaderSeq",
	"ExpectDleStx",
	"ExpectStx",
	"ReadType",
	"ReadLen",
	"ReadData",
	"ReadEscaped",
	"ExpectDleEtx",
	"ExpectEtx",
	"ReadChecksum",
	"ExpectTrailingSyn",
	"Done",
}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", byte(s))
	}
	return stateNames[s]
}

// decoder consumes the bytes of a reply or a bare frame one by one.
type decoder struct {
	state     State
	frame     Frame
	ackOnly   bool
	remaining int
	checksum  uint16
	received  byte
	digits    int
}

func newReplyDecoder() *decoder {
	return &decoder{state: WaitSyn}
}

func newFrameDecoder() *decoder {
	return &decoder{state: FrameStart}
}

func (d *decoder) violation(b byte) error {
	return &ProtocolError{State: d.state, Got: b}
}

func (d *decoder) expect(b byte, expected byte, next State) error {
	if b != expected {
		return d.violation(b)
	}
	d.state = next
	return nil
}

// Feed processes the next byte and reports if the decoder reached the Done state.
func (d *decoder) Feed(b byte) (bool, error) {
	var err error
	switch d.state {
	case WaitSyn:
		err = d.expect(b, SYN, SkipExtraSyns)
	case SkipExtraSyns:
		if b == SYN {
			break
		}
		d.state = ExpectAck
		err = d.expect(b, ACK, ExpectSynAfterAck)
	case ExpectSynAfterAck:
		err = d.expect(b, SYN, ExpectEmptyOrFrame)
	case ExpectEmptyOrFrame:
		if b == 0 {
			d.ackOnly = true
			d.state = Done
			break
		}
		err = d.expect(b, SYN, HeaderSyn)
	case FrameStart:
		err = d.expect(b, SYN, HeaderSyn)
	case HeaderSyn:
		err = d.expect(b, SYN, HeaderSoh)
	case HeaderSoh:
		err = d.expect(b, SOH, HeaderAddrHi)
	case HeaderAddrHi:
		d.frame.Address = uint16(b) << 8
		d.state = HeaderAddrLo
	case HeaderAddrLo:
		d.frame.Address |= uint16(b)
		d.frame.NoReply = d.frame.Address&NoReplyFlag != 0
		if d.frame.Address != BroadcastAddress {
			d.frame.Address &^= NoReplyFlag
		}
		d.state = HeaderSeq
	case HeaderSeq:
		if b < '0' || b > '9' {
			return false, d.violation(b)
		}
		d.frame.Sequence = b - '0'
		d.state = ExpectDleStx
	case ExpectDleStx:
		err = d.expect(b, DLE, ExpectStx)
	case ExpectStx:
		err = d.expect(b, STX, ReadType)
	case ReadType:
		if MessageType(b) > MaxMessageType {
			return false, d.violation(b)
		}
		d.frame.Type = MessageType(b)
		d.checksum += uint16(b)
		d.state = ReadLen
	case ReadLen:
		if b > MaxDataLength {
			return false, d.violation(b)
		}
		d.remaining = int(b)
		d.checksum += uint16(b)
		if d.remaining == 0 {
			d.state = ExpectDleEtx
		} else {
			d.frame.Data = make([]byte, 0, d.remaining)
			d.state = ReadData
		}
	case ReadData:
		if b == DLE {
			d.checksum += uint16(b)
			d.state = ReadEscaped
			break
		}
		d.addData(b)
	case ReadEscaped:
		d.addData(b)
	case ExpectDleEtx:
		err = d.expect(b, DLE, ExpectEtx)
	case ExpectEtx:
		err = d.expect(b, ETX, ReadChecksum)
	case ReadChecksum:
		d.received = d.received<<4 | digitValue(b)
		d.digits++
		if d.digits == 2 {
			d.state = ExpectTrailingSyn
		}
	case ExpectTrailingSyn:
		if b != SYN {
			return false, d.violation(b)
		}
		expected := byte(d.checksum & 0xFF)
		if d.received != expected {
			return false, &ChecksumError{Expected: expected, Actual: d.received}
		}
		d.state = Done
	default:
		return false, d.violation(b)
	}
	return d.state == Done, err
}

func (d *decoder) addData(b byte) {
	d.frame.Data = append(d.frame.Data, b)
	d.checksum += uint16(b)
	d.remaining--
	if d.remaining == 0 {
		d.state = ExpectDleEtx
	} else {
		d.state = ReadData
	}
}

// DecodeFrame decodes a bare frame, as it is produced by EncodeFrame. Bytes following the frame are ignored.
func DecodeFrame(wire []byte) (Frame, error) {
	frame, _, err := decodeFrame(wire)
	return frame, err
}

// decodeFrame also returns the number of bytes that belong to the frame.
func decodeFrame(wire []byte) (Frame, int, error) {
	d := newFrameDecoder()
	for i, b := range wire {
		done, err := d.Feed(b)
		if err != nil {
			return Frame{}, i + 1, err
		}
		if done {
			return d.frame, i + 1, nil
		}
	}
	return Frame{}, len(wire), fmt.Errorf("frame incomplete in state %v: %w", d.state, io.ErrUnexpectedEOF)
}

// ReadReply reads the unit's answer to a request: the ACK handshake, optionally followed by a reply frame.
// A nil frame without error means that the unit only acknowledged the request.
func ReadReply(ctx context.Context, t com.Transport) (*Frame, error) {
	d := newReplyDecoder()
	for {
		b, err := t.Receive(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading reply in state %v: %w", d.state, err)
		}
		done, err := d.Feed(b)
		if err != nil {
			return nil, err
		}
		if !done {
			continue
		}
		if d.ackOnly {
			return nil, nil
		}
		return &d.frame, nil
	}
}
