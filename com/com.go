package com

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	readBufferSize = 1024

	// DefaultTimeout bounds every single byte transfer.
	DefaultTimeout = 1 * time.Second
)

var (
	ErrTimeout = errors.New("transport timeout")
	ErrIO      = errors.New("transport i/o failure")
)

// Transport moves single bytes between the host and an encoder unit.
type Transport interface {
	// Receive waits for the next byte, at most for the configured timeout.
	Receive(ctx context.Context) (byte, error)
	// Send writes one byte and waits until it left the host.
	Send(ctx context.Context, b byte) error
	// Discard drops all pending input.
	Discard()
}

// Drainer is implemented by devices that can block until all written data was transmitted.
type Drainer interface {
	Drain() error
}

// NewWithTrace creates a new COM instance that traces all communications to a second writer.
func NewWithTrace(device io.ReadWriter, tracer io.Writer) *COM {
	result := New(device)
	result.tracer = tracer
	result.trace("****\n* SESSION START\n****\n")
	return result
}

// New creates a new COM instance using the given io.ReadWriter to communicate with the encoder.
func New(device io.ReadWriter) *COM {
	closed := make(chan struct{})
	return &COM{
		device:  device,
		input:   readLoop(device, closed),
		closed:  closed,
		timeout: DefaultTimeout,
	}
}

// COM is a byte oriented Transport on top of an io.ReadWriter.
type COM struct {
	device  io.ReadWriter
	input   <-chan byte
	closed  chan struct{}
	timeout time.Duration
	tracer  io.Writer
}

func readLoop(r io.Reader, closed chan<- struct{}) <-chan byte {
	input := make(chan byte, readBufferSize)
	go func() {
		defer close(closed)
		defer close(input)
		buf := make([]byte, readBufferSize)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[0:n] {
				input <- b
			}
			if err != nil {
				return
			}
		}
	}()
	return input
}

// SetTimeout changes the bound for a single byte transfer.
func (c *COM) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

func (c *COM) Timeout() time.Duration {
	return c.timeout
}

func (c *COM) Closed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// Close closes the underlying device, if it can be closed.
func (c *COM) Close() error {
	c.trace("****\n* SESSION END\n****\n")
	closer, ok := c.device.(io.Closer)
	if !ok {
		return nil
	}
	return closer.Close()
}

func (c *COM) Receive(ctx context.Context) (byte, error) {
	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case b, valid := <-c.input:
		if !valid {
			return 0, fmt.Errorf("%w: %w", ErrIO, io.EOF)
		}
		c.tracef("rx: %02X\n", b)
		return b, nil
	case <-timer.C:
		return 0, fmt.Errorf("no byte received within %v: %w", c.timeout, ErrTimeout)
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (c *COM) Send(ctx context.Context, b byte) error {
	if c.Closed() {
		return fmt.Errorf("%w: %w", ErrIO, io.ErrClosedPipe)
	}

	written := make(chan error, 1)
	go func() {
		_, err := c.device.Write([]byte{b})
		if err == nil {
			if drainer, ok := c.device.(Drainer); ok {
				err = drainer.Drain()
			}
		}
		written <- err
	}()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case err := <-written:
		if err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
		c.tracef("tx: %02X\n", b)
		return nil
	case <-timer.C:
		return fmt.Errorf("byte not sent within %v: %w", c.timeout, ErrTimeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *COM) Discard() {
	discarded := 0
	for {
		select {
		case _, valid := <-c.input:
			if !valid {
				return
			}
			discarded++
		default:
			if discarded > 0 {
				c.tracef("discarded %d bytes\n--\n", discarded)
			}
			return
		}
	}
}

// SendAll writes all bytes in order to the given transport.
func SendAll(ctx context.Context, t Transport, bytes []byte) error {
	for i, b := range bytes {
		err := t.Send(ctx, b)
		if err != nil {
			return fmt.Errorf("sending byte %d of %d failed: %w", i+1, len(bytes), err)
		}
	}
	return nil
}

func (c *COM) trace(args ...interface{}) {
	if c.tracer == nil {
		return
	}
	fmt.Fprint(c.tracer, args...)
}

func (c *COM) tracef(format string, args ...interface{}) {
	if c.tracer == nil {
		return
	}
	fmt.Fprintf(c.tracer, format, args...)
}
