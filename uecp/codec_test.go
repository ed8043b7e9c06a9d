package uecp

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/ftl/rds-encoder/com"
	"github.com/ftl/rds-encoder/metrics"
	"github.com/ftl/rds-encoder/rds"
)

func TestCodec_SendWritesWire(t *testing.T) {
	device := com.NewInMemory()
	defer device.Close()
	m := metrics.New(prometheus.NewRegistry())
	codec := NewCodec(com.New(device), 1, WithMetrics(m))

	err := codec.Send(context.Background(), PIMessage(rds.DefaultChannel, rds.PIFromCode(0x1234, 0)))

	require.NoError(t, err)
	expected, err := com.HexToBinary("FE 0001 00 05 01 0000 1234 5AC8 FF")
	require.NoError(t, err)
	assert.Equal(t, expected, device.Written())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Frames.WithLabelValues(ProtocolName, metrics.Sent)))
}

func TestCodec_SendFailure(t *testing.T) {
	device := com.NewInMemory()
	defer device.Close()
	device.FailWrites(errors.New("line broken"))
	m := metrics.New(prometheus.NewRegistry())
	codec := NewCodec(com.New(device), 1, WithMetrics(m))

	err := codec.Send(context.Background(), RDSOnMessage(true))

	assert.Error(t, err)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Frames.WithLabelValues(ProtocolName, metrics.Sent)))
}

func TestCodec_Pacing(t *testing.T) {
	recorder := NewRecorder(nil)
	limiter := rate.NewLimiter(rate.Every(20*time.Millisecond), 1)
	codec := NewCodec(recorder, 1, WithPacing(limiter))

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, codec.Send(context.Background(), PTYMessage(rds.DefaultChannel, rds.PTY(i))))
	}

	assert.GreaterOrEqual(t, time.Since(start), 35*time.Millisecond)
	assert.Len(t, recorder.Frames(), 3)
}

func TestCodec_PacingCancelled(t *testing.T) {
	recorder := NewRecorder(nil)
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	codec := NewCodec(recorder, 1, WithPacing(limiter))
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, codec.Send(ctx, CTMessage(true)))
	cancel()
	err := codec.Send(ctx, CTMessage(false))

	assert.Error(t, err)
	assert.Len(t, recorder.Frames(), 1)
}

func TestRecorder_InvalidFrames(t *testing.T) {
	recorder := NewRecorder(nil)
	ctx := context.Background()
	wire, err := com.HexToBinary("00 FE 0001 FE 0000 00 00 7B3F FF FE 0000 00 00 0000 FF")
	require.NoError(t, err)

	require.NoError(t, com.SendAll(ctx, recorder, wire))

	assert.Len(t, recorder.Frames(), 1)
	errs := recorder.Errors()
	require.Len(t, errs, 2)
	var crcErr *CRCError
	assert.ErrorAs(t, errs[1], &crcErr)

	_, err = recorder.Receive(ctx)
	assert.ErrorIs(t, err, rds.ErrTimeout)
}

func TestUTCOffset(t *testing.T) {
	tt := []struct {
		hours    int
		expected byte
	}{
		{0, 0x00},
		{1, 0x02},
		{14, 0x1C},
		{-1, 0x3E},
		{-12, 0x28},
	}
	for _, tc := range tt {
		t.Run(fmt.Sprintf("%+d", tc.hours), func(t *testing.T) {
			assert.Equal(t, tc.expected, UTCOffset(tc.hours))
		})
	}
}
