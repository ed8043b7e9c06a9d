package com

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToBinary(t *testing.T) {
	tt := []struct {
		desc     string
		value    string
		expected []byte
		invalid  bool
	}{
		{"empty", "", []byte{}, false},
		{"plain", "FE0001FF", []byte{0xFE, 0x00, 0x01, 0xFF}, false},
		{"spaces", "16 16 06 16 00", []byte{0x16, 0x16, 0x06, 0x16, 0x00}, false},
		{"colons", "fe:fd:01:ff", []byte{0xFE, 0xFD, 0x01, 0xFF}, false},
		{"odd length", "FE0", nil, true},
		{"no hex", "XY", nil, true},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := HexToBinary(tc.value)
			if tc.invalid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestBinaryToHex(t *testing.T) {
	assert.Equal(t, "16160616", BinaryToHex([]byte{0x16, 0x16, 0x06, 0x16}))
	assert.Equal(t, "", BinaryToHex(nil))
}
