package encoder

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ftl/rds-encoder/com"
	"github.com/ftl/rds-encoder/metrics"
	"github.com/ftl/rds-encoder/prais"
	"github.com/ftl/rds-encoder/rds"
	"github.com/ftl/rds-encoder/uecp"
)

// Protocol selects the wire protocol of a session.
type Protocol string

// All supported protocols
const (
	ProtocolA Protocol = prais.ProtocolName
	ProtocolB Protocol = uecp.ProtocolName
)

// ParseProtocol accepts the protocol names as well as "a" and "b".
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", string(ProtocolA):
		return ProtocolA, nil
	case "b", string(ProtocolB):
		return ProtocolB, nil
	default:
		return "", fmt.Errorf("unknown protocol %q: %w", s, rds.ErrInvalidArgument)
	}
}

// Option configures a Session.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
	flags   rds.Flags
	limiter *rate.Limiter
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithFlags declares hardware specific features of the encoder.
func WithFlags(flags rds.Flags) Option {
	return func(o *options) {
		o.flags = flags
	}
}

// WithPacing limits the rate of frames sent to the encoder.
func WithPacing(limiter *rate.Limiter) Option {
	return func(o *options) {
		o.limiter = limiter
	}
}

// Session controls one encoder, or a group of encoders through a broadcast address, with a fixed protocol.
// The session owns the transport exclusively. A Session must not be used concurrently.
type Session struct {
	id         uuid.UUID
	protocol   Protocol
	transport  com.Transport
	address    uint16
	flags      rds.Flags
	handler    rds.Handler
	praisCodec *prais.Codec
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// Open creates a session on the given transport. With ProtocolA, the encoder address is the unit address and the
// site address is ignored; prais.BroadcastAddress addresses all units. With ProtocolB, the site address (0-1023)
// and the encoder address (0-63) are combined; 0 addresses all encoders.
func Open(transport com.Transport, protocol Protocol, siteAddress uint16, encoderAddress uint16, opts ...Option) (*Session, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.New()
	result := &Session{
		id:        id,
		protocol:  protocol,
		transport: transport,
		flags:     o.flags,
		logger:    o.logger.With(zap.Stringer("session", id), zap.String("protocol", string(protocol))),
		metrics:   o.metrics,
	}

	switch protocol {
	case ProtocolA:
		if err := prais.CheckAddress(encoderAddress); err != nil {
			return nil, err
		}
		result.address = encoderAddress
		codec := prais.NewCodec(transport, result.address,
			prais.WithLogger(result.logger),
			prais.WithMetrics(o.metrics),
			prais.WithPacing(o.limiter),
		)
		result.praisCodec = codec
		result.handler = prais.NewHandler(codec, o.flags)
	case ProtocolB:
		if encoderAddress > uecp.MaxEncoderAddress {
			return nil, fmt.Errorf("encoder address %d out of range [0, %d]: %w", encoderAddress, uecp.MaxEncoderAddress, rds.ErrInvalidArgument)
		}
		address, err := uecp.Address(siteAddress, byte(encoderAddress))
		if err != nil {
			return nil, err
		}
		result.address = address
		codec := uecp.NewCodec(transport, address,
			uecp.WithLogger(result.logger),
			uecp.WithMetrics(o.metrics),
			uecp.WithPacing(o.limiter),
		)
		result.handler = uecp.NewHandler(codec)
	default:
		return nil, fmt.Errorf("unknown protocol %q: %w", protocol, rds.ErrInvalidArgument)
	}

	result.logger.Debug("session opened", zap.Uint16("address", result.address), zap.Uint16("flags", uint16(o.flags)))
	return result, nil
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Protocol() Protocol {
	return s.protocol
}

// Address returns the address on the wire.
func (s *Session) Address() uint16 {
	return s.address
}

// Sequence returns the sequence number of the next frame. It is always 0 with ProtocolB.
func (s *Session) Sequence() byte {
	if s.praisCodec == nil {
		return 0
	}
	return s.praisCodec.Sequence()
}

func (s *Session) Flags() rds.Flags {
	return s.flags
}

// IsBroadcast reports if the session addresses all encoders on the line.
func (s *Session) IsBroadcast() bool {
	switch s.protocol {
	case ProtocolA:
		return s.address == prais.BroadcastAddress
	default:
		return s.address == uecp.BroadcastAddress
	}
}

// Supports reports if the session's protocol implements the given operation.
func (s *Session) Supports(op rds.Operation) bool {
	return s.handler.Supports(op)
}

// Operations lists all operations the session supports.
func (s *Session) Operations() []rds.Operation {
	var result []rds.Operation
	for _, op := range rds.AllOperations() {
		if s.Supports(op) {
			result = append(result, op)
		}
	}
	return result
}

// Close closes the transport, if it can be closed.
func (s *Session) Close() error {
	s.logger.Debug("session closed")
	closer, ok := s.transport.(io.Closer)
	if !ok {
		return nil
	}
	return closer.Close()
}

// run executes one operation after the checks that apply to all protocols.
func (s *Session) run(op rds.Operation, validate func() error, execute func() error) error {
	err := s.check(op, validate)
	if err == nil {
		err = execute()
	}

	s.metrics.Operation(string(s.protocol), op, err)
	if err != nil {
		s.logger.Warn("operation failed", zap.Stringer("operation", op), zap.Error(err))
		return err
	}
	s.logger.Debug("operation done", zap.Stringer("operation", op))
	return nil
}

func (s *Session) check(op rds.Operation, validate func() error) error {
	if validate != nil {
		err := validate()
		if err != nil {
			return err
		}
	}
	if op.IsGet() && s.IsBroadcast() {
		return fmt.Errorf("%v on the broadcast address: %w", op, rds.ErrUnsupported)
	}
	if !s.Supports(op) {
		return fmt.Errorf("%v with protocol %s: %w", op, s.protocol, rds.ErrUnsupported)
	}
	return nil
}
