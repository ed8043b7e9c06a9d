package prais

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl/rds-encoder/com"
	"github.com/ftl/rds-encoder/metrics"
	"github.com/ftl/rds-encoder/rds"
)

func prepareCOM(t *testing.T, input string) (*com.COM, *com.InMemory) {
	t.Helper()
	device := com.NewInMemory()
	t.Cleanup(func() { device.Close() })
	if input != "" {
		bytes, err := com.HexToBinary(input)
		require.NoError(t, err)
		device.PrepareRead(bytes)
	}
	result := com.New(device)
	result.SetTimeout(50 * time.Millisecond)
	return result, device
}

func TestReadReply(t *testing.T) {
	reply, err := EncodeFrame(Frame{Address: 1, Message: Message{Type: PTY, Data: []byte{5}}})
	require.NoError(t, err)

	tt := []struct {
		desc      string
		input     string
		expected  *Frame
		violation bool
		state     State
		timeout   bool
	}{
		{
			desc:  "ACK only",
			input: "16 16 06 16 00",
		},
		{
			desc:  "extra SYNs before ACK",
			input: "16 16 16 16 06 16 00",
		},
		{
			desc:     "reply frame",
			input:    "16 16 06 16" + com.BinaryToHex(reply),
			expected: &Frame{Address: 1, Message: Message{Type: PTY, Data: []byte{5}}},
		},
		{
			desc:      "NAK",
			input:     "16 16 15",
			violation: true,
			state:     ExpectAck,
		},
		{
			desc:      "garbage",
			input:     "00",
			violation: true,
			state:     WaitSyn,
		},
		{
			desc:      "missing SYN after ACK",
			input:     "16 06 06",
			violation: true,
			state:     ExpectSynAfterAck,
		},
		{
			desc:    "no answer",
			timeout: true,
		},
		{
			desc:    "incomplete frame",
			input:   "16 16 06 16 16 16 01",
			timeout: true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			transport, _ := prepareCOM(t, tc.input)

			actual, err := ReadReply(context.Background(), transport)

			switch {
			case tc.timeout:
				assert.ErrorIs(t, err, rds.ErrTimeout)
			case tc.violation:
				var protocolErr *ProtocolError
				require.ErrorAs(t, err, &protocolErr)
				assert.Equal(t, tc.state, protocolErr.State)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}

func TestCodec_SequenceCycles(t *testing.T) {
	sim := NewSimulator(1)
	codec := NewCodec(sim, 1)

	for i := 0; i < 12; i++ {
		err := codec.Send(context.Background(), PTYMessage(5), true)
		require.NoError(t, err)
	}

	frames := sim.Frames()
	require.Len(t, frames, 12)
	for i, frame := range frames {
		assert.Equal(t, byte(i%10), frame.Sequence, "frame %d", i)
		assert.True(t, frame.NoReply)
	}
	assert.Equal(t, byte(2), codec.Sequence())
}

func TestCodec_SequenceIncrementsOnFailure(t *testing.T) {
	transport, device := prepareCOM(t, "")
	device.FailWrites(errors.New("line broken"))
	codec := NewCodec(transport, 1)

	err := codec.Send(context.Background(), PTYMessage(5), false)

	assert.Error(t, err)
	assert.Equal(t, byte(1), codec.Sequence())
}

func TestCodec_SendWritesPostamble(t *testing.T) {
	transport, device := prepareCOM(t, "")
	codec := NewCodec(transport, 1)

	err := codec.Send(context.Background(), RDSOnMessage(true), true)
	require.NoError(t, err)

	wire, err := EncodeFrame(Frame{Address: 1, NoReply: true, Message: RDSOnMessage(true)})
	require.NoError(t, err)
	written := device.Written()
	require.Len(t, written, len(wire)+PostambleLength)
	assert.Equal(t, wire, written[:len(wire)])
	for _, b := range written[len(wire):] {
		assert.Equal(t, ETX, b)
	}
}

func TestCodec_Request(t *testing.T) {
	sim := NewSimulator(1)
	sim.SetTAMSDI(0x21)
	codec := NewCodec(sim, 1)

	data, err := codec.Request(context.Background(), TAMSDIRequest())

	require.NoError(t, err)
	assert.Equal(t, []byte{0x21}, data)
	assert.Equal(t, 1, sim.Acks())
}

func TestCodec_ExchangeAckOnly(t *testing.T) {
	sim := NewSimulator(1)
	codec := NewCodec(sim, 1)

	reply, err := codec.Exchange(context.Background(), PTYMessage(3))

	require.NoError(t, err)
	assert.Nil(t, reply)
	assert.Equal(t, 0, sim.Acks())
	assert.Equal(t, byte(3), sim.PTY())
}

func TestCodec_RequestAckOnlyIsViolation(t *testing.T) {
	sim := NewSimulator(1)
	codec := NewCodec(sim, 1)

	_, err := codec.Request(context.Background(), PTYMessage(3))

	assert.ErrorIs(t, err, rds.ErrProtocolViolation)
}

func TestCodec_CorruptedReply(t *testing.T) {
	sim := NewSimulator(1)
	codec := NewCodec(sim, 1)
	sim.CorruptNextReply()

	_, err := codec.Request(context.Background(), PTYRequest())

	var checksumErr *ChecksumError
	assert.ErrorAs(t, err, &checksumErr)
	assert.Equal(t, 0, sim.Acks())

	data, err := codec.Request(context.Background(), PTYRequest())
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, data)
}

func TestCodec_SilentUnit(t *testing.T) {
	sim := NewSimulator(1)
	sim.SetSilent(true)
	codec := NewCodec(sim, 1)

	_, err := codec.Request(context.Background(), PIRequest())

	assert.ErrorIs(t, err, rds.ErrTimeout)
}

func TestCodec_PostBroadcast(t *testing.T) {
	sim := NewSimulator(7)
	codec := NewCodec(sim, BroadcastAddress)

	reply, err := codec.Post(context.Background(), PTYMessage(9))

	require.NoError(t, err)
	assert.Nil(t, reply)
	frames := sim.Frames()
	require.Len(t, frames, 1)
	assert.True(t, frames[0].NoReply)
	assert.Equal(t, BroadcastAddress, frames[0].Address)
	assert.Equal(t, byte(9), sim.PTY())
}

func TestCodec_OtherAddressIsIgnored(t *testing.T) {
	sim := NewSimulator(7)
	codec := NewCodec(sim, 8)

	_, err := codec.Request(context.Background(), PTYRequest())

	assert.ErrorIs(t, err, rds.ErrTimeout)
	assert.Len(t, sim.Frames(), 1)
}

func TestCodec_Metrics(t *testing.T) {
	sim := NewSimulator(1)
	m := metrics.New(prometheus.NewRegistry())
	codec := NewCodec(sim, 1, WithMetrics(m))

	_, err := codec.Request(context.Background(), PIRequest())
	require.NoError(t, err)
	sim.SetSilent(true)
	_, err = codec.Request(context.Background(), PIRequest())
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Frames.WithLabelValues(ProtocolName, metrics.Sent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Frames.WithLabelValues(ProtocolName, metrics.Received)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues(ProtocolName, "timeout")))
}
