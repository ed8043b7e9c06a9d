package com

import (
	"io"
	"sync"
	"time"
)

// NewInMemory creates a device that keeps everything in memory. It is meant for testing.
func NewInMemory() *InMemory {
	return &InMemory{
		readBuffer:  []byte{},
		writeBuffer: []byte{},
		lock:        new(sync.Mutex),
		writeSignal: make(chan bool, 1),
		closed:      make(chan struct{}),
	}
}

// InMemory is an io.ReadWriteCloser that also implements Drainer.
type InMemory struct {
	readBuffer     []byte
	writeBuffer    []byte
	lock           *sync.Mutex
	writeSignal    chan bool
	closed         chan struct{}
	closeWhenEmpty bool
	drains         int
	writeErr       error
}

func (rw *InMemory) Close() error {
	rw.lock.Lock()
	defer rw.lock.Unlock()
	rw.closeLocked()
	return nil
}

func (rw *InMemory) closeLocked() {
	select {
	case <-rw.closed:
	default:
		close(rw.closed)
	}
}

func (rw *InMemory) WaitUntilClosed() {
	<-rw.closed
}

func (rw *InMemory) Read(p []byte) (int, error) {
	for {
		rw.lock.Lock()
		if len(rw.readBuffer) > 0 {
			break
		}
		rw.lock.Unlock()
		select {
		case <-rw.closed:
			return 0, io.EOF
		case <-time.After(time.Millisecond):
			continue
		}
	}
	defer rw.lock.Unlock()

	n := copy(p, rw.readBuffer)
	rw.readBuffer = rw.readBuffer[n:]
	if rw.closeWhenEmpty && len(rw.readBuffer) == 0 {
		rw.closeLocked()
	}
	return n, nil
}

// PrepareRead appends data that subsequent reads will return.
func (rw *InMemory) PrepareRead(p []byte) {
	rw.lock.Lock()
	defer rw.lock.Unlock()

	rw.readBuffer = append(rw.readBuffer, p...)
}

func (rw *InMemory) ClearRead() {
	rw.lock.Lock()
	defer rw.lock.Unlock()

	rw.readBuffer = []byte{}
	if rw.closeWhenEmpty {
		rw.closeLocked()
	}
}

func (rw *InMemory) IsReadEmpty() bool {
	rw.lock.Lock()
	defer rw.lock.Unlock()

	return len(rw.readBuffer) == 0
}

func (rw *InMemory) CloseWhenEmpty(value bool) {
	rw.lock.Lock()
	defer rw.lock.Unlock()

	rw.closeWhenEmpty = value
}

// FailWrites lets all following writes fail with the given error.
func (rw *InMemory) FailWrites(err error) {
	rw.lock.Lock()
	defer rw.lock.Unlock()

	rw.writeErr = err
}

func (rw *InMemory) Write(p []byte) (int, error) {
	rw.lock.Lock()
	defer rw.lock.Unlock()

	if rw.writeErr != nil {
		return 0, rw.writeErr
	}
	rw.writeBuffer = append(rw.writeBuffer, p...)
	select {
	case rw.writeSignal <- true:
	default:
	}
	return len(p), nil
}

func (rw *InMemory) Drain() error {
	rw.lock.Lock()
	defer rw.lock.Unlock()

	rw.drains++
	return nil
}

// Drains returns how often Drain was called.
func (rw *InMemory) Drains() int {
	rw.lock.Lock()
	defer rw.lock.Unlock()

	return rw.drains
}

// Written returns a copy of everything written so far.
func (rw *InMemory) Written() []byte {
	rw.lock.Lock()
	defer rw.lock.Unlock()

	result := make([]byte, len(rw.writeBuffer))
	copy(result, rw.writeBuffer)
	return result
}

func (rw *InMemory) ClearWrite() {
	rw.lock.Lock()
	defer rw.lock.Unlock()

	rw.writeBuffer = []byte{}
}

func (rw *InMemory) WaitUntilWritten() {
	<-rw.writeSignal
}
