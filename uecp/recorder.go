package uecp

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ftl/rds-encoder/com"
)

// Recorder stands in for an encoder: it decodes every frame written to it. It implements com.Transport.
// An encoder never answers, so Receive always times out.
type Recorder struct {
	logger *zap.Logger

	lock    sync.Mutex
	pending []byte
	inFrame bool
	frames  []Frame
	errors  []error
}

func NewRecorder(logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{logger: logger}
}

func (r *Recorder) Send(ctx context.Context, b byte) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	r.lock.Lock()
	defer r.lock.Unlock()

	switch {
	case b == StartByte:
		if r.inFrame {
			r.reject(fmt.Errorf("frame interrupted after %d bytes", len(r.pending)))
		}
		r.pending = append(r.pending[:0], b)
		r.inFrame = true
	case !r.inFrame:
		r.logger.Warn("ignoring byte outside of a frame", zap.Uint8("byte", b))
	case b == StopByte:
		r.pending = append(r.pending, b)
		r.inFrame = false
		frame, err := DecodeFrame(r.pending)
		if err != nil {
			r.reject(err)
			break
		}
		r.logger.Info("received frame", zap.Stringer("frame", frame))
		r.frames = append(r.frames, frame)
	default:
		r.pending = append(r.pending, b)
	}
	return nil
}

func (r *Recorder) reject(err error) {
	r.logger.Warn("invalid frame", zap.String("wire", com.BinaryToHex(r.pending)), zap.Error(err))
	r.errors = append(r.errors, err)
}

func (r *Recorder) Receive(ctx context.Context) (byte, error) {
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}
	return 0, fmt.Errorf("encoder does not reply: %w", com.ErrTimeout)
}

func (r *Recorder) Discard() {}

// Frames returns all valid frames received so far.
func (r *Recorder) Frames() []Frame {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]Frame{}, r.frames...)
}

// Errors returns the decoding errors of all invalid frames.
func (r *Recorder) Errors() []error {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]error{}, r.errors...)
}
