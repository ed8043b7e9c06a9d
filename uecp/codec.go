package uecp

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ftl/rds-encoder/com"
	"github.com/ftl/rds-encoder/metrics"
)

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the logger for frame level debugging output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Codec) {
		c.logger = logger.With(zap.String("protocol", ProtocolName))
	}
}

// WithMetrics counts frames and errors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Codec) {
		c.metrics = m
	}
}

// WithPacing waits for the limiter before every frame that is sent.
func WithPacing(limiter *rate.Limiter) Option {
	return func(c *Codec) {
		c.limiter = limiter
	}
}

// Codec writes frames to the encoders with one address. A Codec must not be used concurrently.
type Codec struct {
	transport com.Transport
	address   uint16
	logger    *zap.Logger
	metrics   *metrics.Metrics
	limiter   *rate.Limiter
}

func NewCodec(transport com.Transport, address uint16, opts ...Option) *Codec {
	result := &Codec{
		transport: transport,
		address:   address,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

func (c *Codec) Address() uint16 {
	return c.address
}

func (c *Codec) IsBroadcast() bool {
	return c.address == BroadcastAddress
}

// Send writes the message as one frame with the sequence number 0. A nil message is sent as an empty frame.
func (c *Codec) Send(ctx context.Context, msg *Message) error {
	frame := Frame{
		Address:  c.address,
		Sequence: 0,
		Message:  msg,
	}
	wire, err := EncodeFrame(frame)
	if err != nil {
		return err
	}

	if c.limiter != nil {
		err = c.limiter.Wait(ctx)
		if err != nil {
			return err
		}
	}

	c.logger.Debug("sending frame", zap.Stringer("frame", frame), zap.String("wire", com.BinaryToHex(wire)))
	err = com.SendAll(ctx, c.transport, wire)
	if err != nil {
		c.metrics.Error(ProtocolName, err)
		return fmt.Errorf("sending %v: %w", msg, err)
	}
	c.metrics.FrameSent(ProtocolName)
	return nil
}
