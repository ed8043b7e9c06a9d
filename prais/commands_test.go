package prais

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl/rds-encoder/rds"
)

func TestUTCOffset(t *testing.T) {
	tt := []struct {
		hours    int
		expected byte
	}{
		{0, 0x00},
		{1, 0x02},
		{2, 0x04},
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

func TestRTChunks(t *testing.T) {
	chunks := RTChunks("HELLO")

	require.Len(t, chunks, RTBufferSize/RTChunkSize)
	var buffer []byte
	for _, chunk := range chunks {
		assert.Equal(t, RT, chunk.Type)
		assert.Len(t, chunk.Data, RTChunkSize)
		buffer = append(buffer, chunk.Data...)
	}
	assert.Equal(t, strings.Repeat("HELLO  ", 9)+" ", string(buffer))
}

func TestRTChunks_LongText(t *testing.T) {
	text := strings.Repeat("ABCDEFGH", 5)

	chunks := RTChunks(text)

	var buffer []byte
	for _, chunk := range chunks {
		buffer = append(buffer, chunk.Data...)
	}
	assert.Equal(t, text+strings.Repeat(" ", RTBufferSize-len(text)), string(buffer))
}

func TestRTModeMessages(t *testing.T) {
	assert.Equal(t, []Message{{Type: RT, Data: []byte{0}}}, RTModeMessages(RTModeOff))
	assert.Equal(t, []Message{{Type: RT, Data: []byte{0, 0}}, {Type: RT, Data: []byte{1}}}, RTModeMessages(RTModeA))
	assert.Equal(t, []Message{{Type: RT, Data: []byte{0, 0x40}}, {Type: RT, Data: []byte{2}}}, RTModeMessages(RTModeB))
}

func TestParseTAMSDI_MasksTATPOn(t *testing.T) {
	actual, err := ParseTAMSDI([]byte{0x86})
	require.NoError(t, err)
	assert.Equal(t, TAMSDITA|TAMSDITP, actual)

	_, err = ParseTAMSDI(nil)
	assert.ErrorIs(t, err, rds.ErrProtocolViolation)
}

func TestPIMessage(t *testing.T) {
	pi := rds.PI{Country: rds.NewCountryCode(0xD, 0xE0), Coverage: rds.CoverageSupraRegional, ProgrammeReference: 0x12}

	msg := PIMessage(pi)

	assert.Equal(t, []byte{0xD3, 0x12, 0xE0}, msg.Data)
	parsed, err := ParsePI(msg.Data)
	require.NoError(t, err)
	assert.Equal(t, pi, parsed)

	_, err = ParsePI([]byte{0xD3})
	assert.ErrorIs(t, err, rds.ErrProtocolViolation)
}

func TestParsePS(t *testing.T) {
	assert.Equal(t, "", ParsePS(nil))
	assert.Equal(t, "", ParsePS([]byte{1, 0}))
	assert.Equal(t, "RADIO   ", ParsePS([]byte("\x01\x00RADIO   ")))
}

func TestDIConversion(t *testing.T) {
	for di := rds.DI(0); di <= rds.DIMask; di++ {
		assert.Equal(t, di, TAMSDIToDI(DIToTAMSDI(di)), "%v", di)
	}
	assert.Equal(t, TAMSDIStereo|TAMSDICompressed, DIToTAMSDI(rds.DIStereo|rds.DICompressed))
}
