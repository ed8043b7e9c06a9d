package prais

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl/rds-encoder/com"
	"github.com/ftl/rds-encoder/rds"
)

func TestFrameRoundTrip(t *testing.T) {
	tt := []struct {
		desc     string
		frame    Frame
		expected string
	}{
		{
			desc:     "PI",
			frame:    Frame{Address: 1, Sequence: 0, Message: Message{Type: PI, Data: []byte{0xD3, 0x12, 0xE0}}},
			expected: "16 16 01 0001 30 1002 09 03 D312E0 1003 4431 16",
		},
		{
			desc:     "escaped DLE",
			frame:    Frame{Address: 1, Sequence: 1, Message: Message{Type: RT, Data: []byte{DLE, 0x41}}},
			expected: "16 16 01 0001 31 1002 0F 02 1010 41 1003 3732 16",
		},
		{
			desc:     "request without data",
			frame:    Frame{Address: 0x0102, Sequence: 9, Message: Message{Type: TAMSDI}},
			expected: "16 16 01 0102 39 1002 03 00 1003 3033 16",
		},
		{
			desc:     "no reply",
			frame:    Frame{Address: 1, Sequence: 2, NoReply: true, Message: Message{Type: PTY, Data: []byte{10}}},
			expected: "16 16 01 8001 32 1002 0C 01 0A 1003 3137 16",
		},
		{
			desc:     "broadcast",
			frame:    Frame{Address: BroadcastAddress, Sequence: 3, NoReply: true, Message: Message{Type: RDSOn, Data: []byte{1}}},
			expected: "16 16 01 FFFF 33 1002 01 01 01 1003 3033 16",
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			expected, err := com.HexToBinary(tc.expected)
			require.NoError(t, err)

			wire, err := EncodeFrame(tc.frame)
			require.NoError(t, err)
			assert.Equal(t, expected, wire)

			decoded, err := DecodeFrame(wire)
			require.NoError(t, err)
			assert.Equal(t, tc.frame, decoded)
		})
	}
}

func TestEncodeFrame_Invalid(t *testing.T) {
	tt := []struct {
		desc  string
		frame Frame
	}{
		{"type out of range", Frame{Message: Message{Type: 0x10}}},
		{"data too long", Frame{Message: Message{Type: RT, Data: make([]byte, MaxDataLength+1)}}},
		{"sequence out of range", Frame{Sequence: 10, Message: Message{Type: PI}}},
		{"unit address with no-reply flag", Frame{Address: 0x8005, Message: Message{Type: PI}}},
		{"no-reply unit address with no-reply flag", Frame{Address: 0x8005, NoReply: true, Message: Message{Type: PI}}},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := EncodeFrame(tc.frame)
			assert.ErrorIs(t, err, rds.ErrInvalidArgument)
		})
	}
}

func TestChecksumDigits(t *testing.T) {
	tt := []struct {
		value    byte
		expected byte
	}{
		{0x0, '0'},
		{0x9, '9'},
		{0xA, 'A'},
		{0xC, 'C'},
		{0xF, 'F'},
	}
	for _, tc := range tt {
		t.Run(string(tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, checksumDigit(tc.value))
			assert.Equal(t, tc.value, digitValue(tc.expected))
		})
	}
}

func TestChecksum_CountsEscapes(t *testing.T) {
	assert.Equal(t, byte(0x72), Checksum(Message{Type: RT, Data: []byte{DLE, 0x41}}))
	assert.Equal(t, byte(0xD1), Checksum(Message{Type: PI, Data: []byte{0xD3, 0x12, 0xE0}}))
}

func TestDecodeFrame_Corrupted(t *testing.T) {
	wire, err := EncodeFrame(Frame{Address: 1, Message: Message{Type: PI, Data: []byte{0xD3, 0x12, 0xE0}}})
	require.NoError(t, err)

	// type, data and checksum characters
	for _, i := range []int{8, 10, 11, 12, 15, 16} {
		corrupted := append([]byte{}, wire...)
		corrupted[i] ^= 0x01

		_, err := DecodeFrame(corrupted)

		var checksumErr *ChecksumError
		assert.ErrorAs(t, err, &checksumErr, "byte %d", i)
		assert.ErrorIs(t, err, rds.ErrProtocolViolation, "byte %d", i)
	}
}

func TestDecodeFrame_Violations(t *testing.T) {
	tt := []struct {
		desc  string
		wire  string
		state State
	}{
		{"missing SOH", "16 16 02", HeaderSoh},
		{"invalid sequence", "16 16 01 0001 3A", HeaderSeq},
		{"missing STX", "16 16 01 0001 30 10 03", ExpectStx},
		{"unknown type", "16 16 01 0001 30 1002 10", ReadType},
		{"data too long", "16 16 01 0001 30 1002 0F 29", ReadLen},
		{"missing ETX", "16 16 01 0001 30 1002 03 00 10 02", ExpectEtx},
		{"missing trailing SYN", "16 16 01 0001 30 1002 03 00 1003 3033 17", ExpectTrailingSyn},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			wire, err := com.HexToBinary(tc.wire)
			require.NoError(t, err)

			_, err = DecodeFrame(wire)

			var protocolErr *ProtocolError
			require.ErrorAs(t, err, &protocolErr)
			assert.Equal(t, tc.state, protocolErr.State)
			assert.ErrorIs(t, err, rds.ErrProtocolViolation)
		})
	}
}

func TestDecodeFrame_Incomplete(t *testing.T) {
	wire, err := EncodeFrame(Frame{Address: 1, Message: Message{Type: PTY, Data: []byte{5}}})
	require.NoError(t, err)

	for i := 0; i < len(wire); i++ {
		_, err := DecodeFrame(wire[:i])
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), "length %d", i)
	}
}

func TestDecodeFrame_IgnoresTrailingBytes(t *testing.T) {
	frame := Frame{Address: 1, NoReply: true, Message: Message{Type: PTY, Data: []byte{5}}}
	wire, err := EncodeFrame(frame)
	require.NoError(t, err)
	wire = append(wire, ETX, ETX, ETX)

	decoded, n, err := decodeFrame(wire)

	require.NoError(t, err)
	assert.Equal(t, frame, decoded)
	assert.Equal(t, len(wire)-3, n)
}
