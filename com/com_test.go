package com

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLoop_CloseDevice(t *testing.T) {
	device := NewInMemory()
	closed := make(chan struct{})
	input := readLoop(device, closed)
	device.Close()

	_, valid := <-input

	assert.False(t, valid)
	<-closed
}

func TestReadLoop_ReadBytes(t *testing.T) {
	device := NewInMemory()
	input := readLoop(device, make(chan struct{}))

	go func() {
		time.Sleep(10 * time.Millisecond)
		device.PrepareRead([]byte{0x16, 0x06})
	}()

	first, valid := <-input
	assert.True(t, valid)
	assert.Equal(t, byte(0x16), first)

	second, valid := <-input
	assert.True(t, valid)
	assert.Equal(t, byte(0x06), second)

	device.Close()
	_, valid = <-input

	assert.False(t, valid)
}

func TestCOM_CloseDevice(t *testing.T) {
	device := NewInMemory()
	com := New(device)

	device.Close()

	time.Sleep(10 * time.Millisecond)
	assert.True(t, com.Closed())

	_, err := com.Receive(context.Background())
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, io.EOF)
}

func TestCOM_Receive(t *testing.T) {
	device := NewInMemory()
	defer device.Close()
	device.PrepareRead([]byte{0x16, 0x16, 0x06})
	com := New(device)

	var actual []byte
	for i := 0; i < 3; i++ {
		b, err := com.Receive(context.Background())
		require.NoError(t, err)
		actual = append(actual, b)
	}

	assert.Equal(t, []byte{0x16, 0x16, 0x06}, actual)
}

func TestCOM_ReceiveTimeout(t *testing.T) {
	device := NewInMemory()
	defer device.Close()
	com := New(device)
	com.SetTimeout(20 * time.Millisecond)

	start := time.Now()
	_, err := com.Receive(context.Background())

	assert.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestCOM_ReceiveCancelled(t *testing.T) {
	device := NewInMemory()
	defer device.Close()
	com := New(device)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := com.Receive(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCOM_SendDrainsAfterEveryByte(t *testing.T) {
	device := NewInMemory()
	defer device.Close()
	com := New(device)

	err := SendAll(context.Background(), com, []byte{0xFE, 0x00, 0xFF})

	assert.NoError(t, err)
	assert.Equal(t, []byte{0xFE, 0x00, 0xFF}, device.Written())
	assert.Equal(t, 3, device.Drains())
}

func TestCOM_SendFailure(t *testing.T) {
	device := NewInMemory()
	defer device.Close()
	device.FailWrites(errors.New("line down"))
	com := New(device)

	err := SendAll(context.Background(), com, []byte{0x16, 0x16})

	assert.ErrorIs(t, err, ErrIO)
	assert.Contains(t, err.Error(), "byte 1 of 2")
}

func TestCOM_DiscardPendingInput(t *testing.T) {
	device := NewInMemory()
	defer device.Close()
	device.PrepareRead([]byte{0x01, 0x02, 0x03})
	com := New(device)
	com.SetTimeout(20 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	com.Discard()

	_, err := com.Receive(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCOM_Trace(t *testing.T) {
	device := NewInMemory()
	defer device.Close()
	device.PrepareRead([]byte{0x06})
	tracer := new(bytes.Buffer)
	com := NewWithTrace(device, tracer)

	require.NoError(t, com.Send(context.Background(), 0x16))
	_, err := com.Receive(context.Background())
	require.NoError(t, err)

	assert.Contains(t, tracer.String(), "SESSION START")
	assert.Contains(t, tracer.String(), "tx: 16\n")
	assert.Contains(t, tracer.String(), "rx: 06\n")
}
