package prais

import (
	"context"
	"fmt"
	"time"

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

// WithMetrics counts frames, errors and exchange durations.
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

// Codec exchanges frames with one unit, or with all units if the address is the BroadcastAddress.
// A Codec must not be used concurrently.
type Codec struct {
	transport com.Transport
	address   uint16
	sequence  byte
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

// Sequence returns the sequence number of the next frame.
func (c *Codec) Sequence() byte {
	return c.sequence
}

func (c *Codec) ResetSequence() {
	c.sequence = 0
}

// Send writes the message as one frame. The sequence number is incremented after every frame, even if the
// transport failed while the frame was written. If noReply is set, the post-amble is sent after the frame.
func (c *Codec) Send(ctx context.Context, msg Message, noReply bool) error {
	frame := Frame{
		Address:  c.address,
		Sequence: c.sequence,
		NoReply:  noReply,
		Message:  msg,
	}
	wire, err := EncodeFrame(frame)
	if err != nil {
		return err
	}
	if noReply {
		for i := 0; i < PostambleLength; i++ {
			wire = append(wire, ETX)
		}
	}

	if c.limiter != nil {
		err = c.limiter.Wait(ctx)
		if err != nil {
			return err
		}
	}

	c.sequence = (c.sequence + 1) % 10
	c.logger.Debug("sending frame", zap.Stringer("frame", frame), zap.String("wire", com.BinaryToHex(wire)))
	err = com.SendAll(ctx, c.transport, wire)
	if err != nil {
		c.metrics.Error(ProtocolName, err)
		return fmt.Errorf("sending %v: %w", msg.Type, err)
	}
	c.metrics.FrameSent(ProtocolName)
	return nil
}

// Receive reads the unit's reply. A nil frame means that the unit only acknowledged the request.
// Pending input is discarded after every reply frame and after every failure.
func (c *Codec) Receive(ctx context.Context) (*Frame, error) {
	frame, err := ReadReply(ctx, c.transport)
	if err == nil && frame == nil {
		c.logger.Debug("received ACK")
		return nil, nil
	}
	c.transport.Discard()
	if err != nil {
		c.logger.Warn("discarding input after invalid reply", zap.Error(err))
		c.metrics.Error(ProtocolName, err)
		return nil, err
	}
	c.logger.Debug("received frame", zap.Stringer("frame", frame))
	c.metrics.FrameReceived(ProtocolName)
	return frame, nil
}

// Acknowledge confirms a received reply frame.
func (c *Codec) Acknowledge(ctx context.Context) error {
	err := com.SendAll(ctx, c.transport, AckSequence)
	if err != nil {
		c.metrics.Error(ProtocolName, err)
		return fmt.Errorf("sending ACK: %w", err)
	}
	return nil
}

// Exchange sends the message, reads the reply, and acknowledges it if the unit sent a reply frame.
func (c *Codec) Exchange(ctx context.Context, msg Message) (*Frame, error) {
	start := time.Now()
	err := c.Send(ctx, msg, false)
	if err != nil {
		return nil, err
	}

	reply, err := c.Receive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%v reply: %w", msg.Type, err)
	}
	if reply != nil {
		err = c.Acknowledge(ctx)
		if err != nil {
			return nil, err
		}
	}
	c.metrics.ObserveExchange(ProtocolName, time.Since(start))
	return reply, nil
}

// Post writes a message to the addressed unit. Broadcast messages are sent without reply, all others are exchanged.
func (c *Codec) Post(ctx context.Context, msg Message) (*Frame, error) {
	if c.IsBroadcast() {
		return nil, c.Send(ctx, msg, true)
	}
	return c.Exchange(ctx, msg)
}

// Request sends a request message and returns the data of the unit's reply frame.
func (c *Codec) Request(ctx context.Context, msg Message) ([]byte, error) {
	reply, err := c.Exchange(ctx, msg)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, fmt.Errorf("%v: no reply frame: %w", msg.Type, errNoReplyFrame)
	}
	return reply.Data, nil
}
