package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ftl/rds-encoder/encoder"
	"github.com/ftl/rds-encoder/prais"
	"github.com/ftl/rds-encoder/rds"
)

func setupSession(t *testing.T) (*encoder.Session, *prais.Simulator) {
	t.Helper()
	sim := prais.NewSimulator(1)
	session, err := encoder.Open(sim, encoder.ProtocolA, 0, 1, encoder.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	return session, sim
}

func TestExecute(t *testing.T) {
	tt := []struct {
		desc     string
		name     string
		args     []string
		expected string
	}{
		{desc: "PI", name: "pi", args: []string{"D312", "E0"}, expected: "D312 (ECC E0) Germany (East)\n"},
		{desc: "PI with ISO country", name: "pi", args: []string{"A201", "at"}, expected: "A201 (ECC E0) Austria\n"},
		{desc: "PI with unknown ECC", name: "pi", args: []string{"D312", "7F"}, expected: "D312 (ECC 7F)\n"},
		{desc: "PS", name: "ps", args: []string{"MY", "RADIO"}, expected: "\"MY RADIO\"\n"},
		{desc: "DI", name: "di", args: []string{"stereo,compressed"}, expected: "stereo,compressed\n"},
		{desc: "dynamic PTY", name: "dynpty", args: []string{"on"}, expected: "on\n"},
		{desc: "TA/TP", name: "tatp", args: []string{"tp"}, expected: "tp\n"},
		{desc: "M/S", name: "ms", args: []string{"speech"}, expected: "speech\n"},
		{desc: "PTY by number", name: "pty", args: []string{"3"}, expected: "3 Information\n"},
		{desc: "PTY by name", name: "pty", args: []string{"rock", "music"}, expected: "11 Rock Music\n"},
		{desc: "RDS on", name: "rds", args: []string{"off"}, expected: "off\n"},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			session, _ := setupSession(t)
			ctx := context.Background()
			out := &bytes.Buffer{}

			err := execute(ctx, tc.name, request{session: session, args: tc.args, out: out})
			require.NoError(t, err)
			assert.Empty(t, out.String())

			err = execute(ctx, tc.name, request{session: session, out: out})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestExecute_Actions(t *testing.T) {
	session, sim := setupSession(t)
	ctx := context.Background()
	out := &bytes.Buffer{}

	require.NoError(t, execute(ctx, "rt", request{session: session, rt: rds.RadioText{Method: rds.RTMethodA}, args: []string{"HELLO", "WORLD"}, out: out}))
	assert.Equal(t, prais.RTModeA, sim.RTMode())
	require.NoError(t, execute(ctx, "store", request{session: session, out: out}))
	assert.True(t, sim.Stored())
	require.NoError(t, execute(ctx, "reset", request{session: session, out: out}))
	assert.Equal(t, 1, sim.Resets())

	require.NoError(t, execute(ctx, "ops", request{session: session, out: out}))
	assert.Contains(t, out.String(), "set PS\n")
}

func TestExecute_Errors(t *testing.T) {
	tt := []struct {
		desc     string
		name     string
		args     []string
		expected error
	}{
		{desc: "unknown parameter", name: "foo"},
		{desc: "missing value", name: "rt"},
		{desc: "read only", name: "ops", args: []string{"x"}},
		{desc: "invalid PI", name: "pi", args: []string{"XYZ"}, expected: rds.ErrInvalidArgument},
		{desc: "invalid flag", name: "rds", args: []string{"maybe"}, expected: rds.ErrInvalidArgument},
		{desc: "invalid PTY", name: "pty", args: []string{"32"}, expected: rds.ErrInvalidArgument},
		{desc: "unknown PTY", name: "pty", args: []string{"Polka"}, expected: rds.ErrInvalidArgument},
		{desc: "unsupported", name: "ptyn", args: []string{"NEWS"}, expected: rds.ErrUnsupported},
		{desc: "unsupported get", name: "rtc", expected: rds.ErrUnsupported},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			session, sim := setupSession(t)

			err := execute(context.Background(), tc.name, request{session: session, args: tc.args, out: &bytes.Buffer{}})

			assert.Error(t, err)
			if tc.expected != nil {
				assert.ErrorIs(t, err, tc.expected)
			}
			assert.Empty(t, sim.Frames())
		})
	}
}

func TestParseECC(t *testing.T) {
	tt := []struct {
		desc     string
		value    string
		country  byte
		expected byte
		invalid  bool
	}{
		{desc: "hex", value: "E1", country: 0xD, expected: 0xE1},
		{desc: "hex prefix", value: "0xE0", country: 0xD, expected: 0xE0},
		{desc: "ISO", value: "de", country: 0xD, expected: 0xE0},
		{desc: "ISO second code", value: "DE", country: 0x1, expected: 0xE0},
		{desc: "ISO other area", value: "US", country: 0x1, expected: 0xA0},
		{desc: "ISO wrong country", value: "AT", country: 0xD, invalid: true},
		{desc: "garbage", value: "XYZ", country: 0xD, invalid: true},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := parseECC(tc.value, tc.country)
			if tc.invalid {
				assert.ErrorIs(t, err, rds.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestParseRTC(t *testing.T) {
	now := time.Date(2024, 3, 15, 13, 45, 30, 500_000_000, time.UTC)

	rtc, err := parseRTC("now", now)
	require.NoError(t, err)
	assert.Equal(t, rds.RTC{Year: 2024, Month: 3, Day: 15, Hour: 13, Minute: 45, Second: 30, Centisecond: 50}, rtc)

	rtc, err = parseRTC("2024-12-31T23:59:58+02:00", now)
	require.NoError(t, err)
	assert.Equal(t, rds.RTC{Year: 2024, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 58, Offset: 2}, rtc)

	_, err = parseRTC("tomorrow", now)
	assert.ErrorIs(t, err, rds.ErrInvalidArgument)
}

func TestParseDI(t *testing.T) {
	di, err := parseDI("stereo, head")
	require.NoError(t, err)
	assert.Equal(t, rds.DIStereo|rds.DIArtificialHead, di)

	di, err = parseDI("mono")
	require.NoError(t, err)
	assert.Equal(t, rds.DI(0), di)

	_, err = parseDI("quadro")
	assert.ErrorIs(t, err, rds.ErrInvalidArgument)
}
