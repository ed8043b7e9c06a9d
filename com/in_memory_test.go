package com

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemory_Read(t *testing.T) {
	tt := []struct {
		desc     string
		in       []byte
		bufLen   int
		expected []byte
	}{
		{"short", []byte{0x16, 0x16, 0x01}, 10, []byte{0x16, 0x16, 0x01}},
		{"exact", []byte{0x16, 0x16, 0x01}, 3, []byte{0x16, 0x16, 0x01}},
		{"long", []byte{0x16, 0x16, 0x01, 0x00, 0x01}, 2, []byte{0x16, 0x16}},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			rw := NewInMemory()
			rw.PrepareRead(tc.in)
			buf := make([]byte, tc.bufLen)

			n, err := rw.Read(buf)

			assert.NoError(t, err)
			assert.Equal(t, len(tc.expected), n)
			assert.Equal(t, tc.expected, buf[0:n])
		})
	}
}

func TestInMemory_ReadClose(t *testing.T) {
	rw := NewInMemory()

	go func() {
		time.Sleep(100 * time.Nanosecond)
		rw.Close()
	}()

	buf := make([]byte, 10)
	n, err := rw.Read(buf)

	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 0, n)
}

func TestInMemory_ReadLater(t *testing.T) {
	rw := NewInMemory()

	go func() {
		time.Sleep(100 * time.Nanosecond)
		rw.PrepareRead([]byte{0x06})
	}()

	buf := make([]byte, 10)
	n, err := rw.Read(buf)

	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte(0x06), buf[0])
}

func TestInMemory_Write(t *testing.T) {
	rw := NewInMemory()

	n, err := rw.Write([]byte{0xFE, 0xFF})

	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0xFE, 0xFF}, rw.Written())
	assert.Equal(t, []byte{0xFE, 0xFF}, rw.Written())

	rw.ClearWrite()
	assert.Empty(t, rw.Written())
}

func TestInMemory_FailWrites(t *testing.T) {
	rw := NewInMemory()
	failure := errors.New("line down")
	rw.FailWrites(failure)

	n, err := rw.Write([]byte{0x16})

	assert.Equal(t, failure, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, rw.Written())
}
