package prais

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/ftl/rds-encoder/com"
)

// Simulator behaves like a Prais unit on the other end of the line. It implements com.Transport, so a Codec can
// use it directly. It is meant for testing and for trying out commands without hardware.
type Simulator struct {
	address uint16

	lock    sync.Mutex
	input   []byte
	output  []byte
	frames  []Frame
	acks    int
	corrupt bool
	silent  bool
	registers
}

type registers struct {
	pi        [3]byte
	ps        map[byte]string
	tamsdi    byte
	pty       byte
	rdsOn     byte
	rtBuffer  [RTBufferSize]byte
	rtPos     int
	rtMode    RTMode
	rtPending bool
	rtc       []byte
	stored    bool
	resets    int
}

func NewSimulator(address uint16) *Simulator {
	result := &Simulator{address: address}
	result.reset()
	return result
}

func (s *Simulator) reset() {
	resets := s.resets
	s.registers = registers{
		ps:     make(map[byte]string),
		rdsOn:  1,
		resets: resets,
	}
	for i := range s.rtBuffer {
		s.rtBuffer[i] = ' '
	}
}

// Send receives one byte from the host.
func (s *Simulator) Send(ctx context.Context, b byte) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	s.input = append(s.input, b)
	s.parseInput()
	return nil
}

// Receive returns the next byte the unit sends to the host. A silent unit causes an immediate timeout.
func (s *Simulator) Receive(ctx context.Context) (byte, error) {
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.output) == 0 {
		return 0, fmt.Errorf("simulated unit sent nothing: %w", com.ErrTimeout)
	}
	result := s.output[0]
	s.output = s.output[1:]
	return result, nil
}

func (s *Simulator) Discard() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.output = nil
}

func (s *Simulator) parseInput() {
	for len(s.input) > 0 {
		if s.input[0] != SYN {
			// post-amble or line noise
			s.input = s.input[1:]
			continue
		}
		if len(s.input) < 3 {
			return
		}
		switch {
		case s.input[1] == SYN && s.input[2] == ACK:
			if len(s.input) < len(AckSequence) {
				return
			}
			s.acks++
			s.input = s.input[len(AckSequence):]
		case s.input[1] == SYN && s.input[2] == SOH:
			frame, n, err := decodeFrame(s.input)
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return
			}
			s.input = s.input[n:]
			if err != nil {
				continue
			}
			s.handleFrame(frame)
		default:
			s.input = s.input[1:]
		}
	}
}

func (s *Simulator) handleFrame(frame Frame) {
	s.frames = append(s.frames, frame)
	if frame.Address != s.address && frame.Address != BroadcastAddress {
		return
	}
	reply := s.execute(frame.Message)
	if frame.NoReply || s.silent {
		return
	}

	s.output = append(s.output, SYN, SYN, ACK, SYN)
	if reply == nil {
		s.output = append(s.output, 0)
		return
	}
	wire, err := EncodeFrame(Frame{Address: s.address, Sequence: frame.Sequence, Message: *reply})
	if err != nil {
		panic(err)
	}
	if s.corrupt {
		wire[len(wire)-2] ^= 0x01
		s.corrupt = false
	}
	s.output = append(s.output, wire...)
}

func (s *Simulator) execute(msg Message) *Message {
	reply := func(data ...byte) *Message {
		return &Message{Type: msg.Type, Data: data}
	}
	data := msg.Data

	switch msg.Type {
	case Reset:
		s.reset()
		s.resets++
		return reply(0)
	case Store:
		s.stored = true
		return reply(0)
	case RDSOn:
		if len(data) == 0 {
			return reply(s.rdsOn)
		}
		s.rdsOn = data[0]
	case TAMSDI:
		if len(data) == 0 {
			value := s.tamsdi
			if value&byte(TAMSDITATPMask) == byte(TAMSDITATPMask) {
				value |= byte(TAMSDITATPOn)
			}
			return reply(value)
		}
		s.tamsdi = data[0]
	case PI:
		if len(data) == 0 {
			return reply(s.pi[:]...)
		}
		copy(s.pi[:], data)
	case PS:
		if len(data) < 2 {
			break
		}
		index := data[1]
		switch data[0] {
		case psRequest:
			name, ok := s.ps[index]
			if !ok {
				return reply(index)
			}
			return reply(append([]byte{psRequest, index}, name...)...)
		case psSet:
			s.ps[index] = string(data[3:])
		case psDisable:
			delete(s.ps, index)
		}
	case PTY:
		if len(data) == 0 {
			return reply(s.pty)
		}
		s.pty = data[0]
	case RTC:
		s.rtc = append([]byte{}, data...)
	case RT:
		switch len(data) {
		case 0:
			if s.rtPending {
				return reply(rtStatusPending)
			}
			return reply(0)
		case 1:
			s.rtMode = RTMode(data[0])
			s.rtPos = 0
		case RTChunkSize:
			copy(s.rtBuffer[s.rtPos:], data)
			s.rtPos = (s.rtPos + RTChunkSize) % RTBufferSize
		}
	}
	return nil
}

// Frames returns all frames the unit received so far.
func (s *Simulator) Frames() []Frame {
	s.lock.Lock()
	defer s.lock.Unlock()

	return append([]Frame{}, s.frames...)
}

// Acks returns how many ACKs the host sent.
func (s *Simulator) Acks() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.acks
}

// CorruptNextReply flips one bit of the next reply's checksum.
func (s *Simulator) CorruptNextReply() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.corrupt = true
}

// SetSilent lets the unit execute commands without answering.
func (s *Simulator) SetSilent(silent bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.silent = silent
}

func (s *Simulator) SetRTPending(pending bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.rtPending = pending
}

func (s *Simulator) SetTAMSDI(value byte) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.tamsdi = value
}

func (s *Simulator) TAMSDI() byte {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.tamsdi
}

func (s *Simulator) PI() []byte {
	s.lock.Lock()
	defer s.lock.Unlock()

	return append([]byte{}, s.pi[:]...)
}

// PS returns the PS name with the given index byte, including the group flag.
func (s *Simulator) PS(index byte) (string, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	name, ok := s.ps[index]
	return name, ok
}

func (s *Simulator) PTY() byte {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.pty
}

func (s *Simulator) RDSOn() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.rdsOn != 0
}

func (s *Simulator) RadioText() string {
	s.lock.Lock()
	defer s.lock.Unlock()

	return string(s.rtBuffer[:])
}

func (s *Simulator) RTMode() RTMode {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.rtMode
}

func (s *Simulator) RTC() []byte {
	s.lock.Lock()
	defer s.lock.Unlock()

	return append([]byte{}, s.rtc...)
}

func (s *Simulator) Stored() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.stored
}

func (s *Simulator) Resets() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.resets
}
