package rds

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeText(t *testing.T) {
	tt := []struct {
		desc     string
		value    string
		maxLen   int
		expected string
	}{
		{"empty", "", 8, ""},
		{"printable", "RADIO 1", 8, "RADIO 1"},
		{"truncate", "RADIO ONE", 8, "RADIO ON"},
		{"control characters", "A\tB\nC", 8, "A B C"},
		{"one space per non-ASCII character", "Köln FM", 8, "K ln FM"},
		{"invalid UTF-8", "A\xffB", 8, "A B"},
		{"tilde and DEL", "~\x7f", 8, "~ "},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual := SanitizeText(tc.value, tc.maxLen)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestPadText(t *testing.T) {
	assert.Equal(t, "ABC     ", PadText("ABC", PSLength))
	assert.Equal(t, "        ", PadText("", PSLength))
	assert.Equal(t, "ABCDEFGH", PadText("ABCDEFGHIJ", PSLength))
}

func TestReplicateRadioText(t *testing.T) {
	twenty := strings.Repeat("x", 20)
	forty := strings.Repeat("y", 40)
	tt := []struct {
		desc     string
		text     string
		expected string
	}{
		{"twenty characters fit twice", twenty, twenty + "  " + twenty + "  " + strings.Repeat(" ", 20)},
		{"forty characters fit only once", forty, forty},
		{"short text fits many times", "HELLO", strings.Repeat("HELLO  ", 9) + " "},
		{"empty", "", strings.Repeat(" ", 64)},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual := ReplicateRadioText(tc.text, 64, 2)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestFieldGroup_Merge(t *testing.T) {
	tt := []struct {
		desc     string
		old      FieldGroup
		patch    FieldGroup
		mask     FieldGroup
		expected FieldGroup
	}{
		{"keep siblings", 0x46, 0x01, 0x19, 0x47},
		{"clear owned bits", 0x5F, 0x00, 0x19, 0x46},
		{"ignore patch bits outside mask", 0x00, 0xFF, 0x06, 0x06},
		{"empty mask", 0x12, 0xFF, 0x00, 0x12},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual := tc.old.Merge(tc.patch, tc.mask)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestFieldGroup_Set(t *testing.T) {
	g := FieldGroup(0x40)
	assert.Equal(t, FieldGroup(0x60), g.Set(0x20, true))
	assert.Equal(t, FieldGroup(0x00), g.Set(0x40, false))
	assert.True(t, g.Has(0x40))
	assert.Equal(t, FieldGroup(0x40), FieldGroup(0x47).Get(0x40))
}

func TestPI_Code(t *testing.T) {
	pi := PI{Country: NewCountryCode(0xD, 0xE0), Coverage: CoverageSupraRegional, ProgrammeReference: 0x12}

	assert.Equal(t, uint16(0xD312), pi.Code())
	assert.Equal(t, byte(0xE0), pi.Country.Extended())
	assert.Equal(t, pi, PIFromCode(0xD312, 0xE0))
	assert.Equal(t, "D312 (ECC E0)", pi.String())
}

func TestCountryCodes(t *testing.T) {
	assert.Equal(t, []CountryCode{0x0DE0, 0x01E0}, CountryCodesByISO("de"))

	countries := CountryCode(0x0AE0).Countries()
	require.Len(t, countries, 1)
	assert.Equal(t, "Austria", countries[0].Name)
	assert.Equal(t, EuropeanBroadcastingArea, countries[0].Area)
}

func TestRTC_Validate(t *testing.T) {
	valid := RTC{Year: 2024, Month: 3, Day: 31, Hour: 12, Minute: 30, Second: 15, Centisecond: 50, Offset: 2}
	tt := []struct {
		desc   string
		modify func(*RTC)
		valid  bool
	}{
		{"valid", func(*RTC) {}, true},
		{"month 13", func(r *RTC) { r.Month = 13 }, false},
		{"hour 24", func(r *RTC) { r.Hour = 24 }, true},
		{"hour 25", func(r *RTC) { r.Hour = 25 }, false},
		{"minute 60", func(r *RTC) { r.Minute = 60 }, false},
		{"second 60", func(r *RTC) { r.Second = 60 }, false},
		{"centisecond 100", func(r *RTC) { r.Centisecond = 100 }, false},
		{"offset -12", func(r *RTC) { r.Offset = -12 }, true},
		{"offset -13", func(r *RTC) { r.Offset = -13 }, false},
		{"offset 14", func(r *RTC) { r.Offset = 14 }, true},
		{"offset 15", func(r *RTC) { r.Offset = 15 }, false},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			rtc := valid
			tc.modify(&rtc)

			err := rtc.Validate()

			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			}
		})
	}
}

func TestRTCFromTime(t *testing.T) {
	location := time.FixedZone("CEST", 2*3600)
	value := time.Date(2024, time.June, 7, 18, 45, 3, 120*int(time.Millisecond), location)

	actual := RTCFromTime(value)

	assert.Equal(t, RTC{Year: 2024, Month: 6, Day: 7, Hour: 18, Minute: 45, Second: 3, Centisecond: 12, Offset: 2}, actual)
}

func TestRTCFromTime_HalfHourZones(t *testing.T) {
	tt := []struct {
		desc     string
		offset   int
		expected int
	}{
		{"India", 5*3600 + 1800, 5},
		{"Newfoundland", -(3*3600 + 1800), -3},
		{"Nepal", 5*3600 + 2700, 5},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			value := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.FixedZone(tc.desc, tc.offset))

			assert.Equal(t, tc.expected, RTCFromTime(value).Offset)
		})
	}
}

func TestRadioText_Validate(t *testing.T) {
	assert.NoError(t, RadioText{Text: "hello", Method: RTMethodB, Retransmissions: 15}.Validate())
	assert.ErrorIs(t, RadioText{Text: strings.Repeat("x", 65)}.Validate(), ErrInvalidArgument)
	assert.NoError(t, RadioText{Text: strings.Repeat("é", 64)}.Validate())
	err := RadioText{Text: strings.Repeat("é", 65)}.Validate()
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "65 characters")
	assert.ErrorIs(t, RadioText{Retransmissions: 16}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, RadioText{Method: 3}.Validate(), ErrInvalidArgument)
}

func TestPTY(t *testing.T) {
	assert.Equal(t, "News", PTY(1).String())
	assert.Equal(t, "pty(32)", PTY(32).String())
	pty, ok := PTYByName("rock music")
	assert.True(t, ok)
	assert.Equal(t, PTY(11), pty)
	assert.False(t, PTY(32).Valid())
}

func TestOperations(t *testing.T) {
	ops := NewOperations(GetPI, SetRTC, SetCommunicationMode)

	assert.True(t, ops.Contains(GetPI))
	assert.True(t, ops.Contains(SetRTC))
	assert.True(t, ops.Contains(SetCommunicationMode))
	assert.False(t, ops.Contains(SetPI))
	assert.False(t, ops.Contains(operationCount))
	assert.Len(t, AllOperations(), int(operationCount))
	assert.True(t, GetRDSOn.IsGet())
	assert.False(t, SetRDSOn.IsGet())
	assert.Equal(t, "set TA/TP", SetTATP.String())
}

func TestUnsupported(t *testing.T) {
	var handler Handler = Unsupported{}
	ctx := context.Background()

	assert.False(t, handler.Supports(GetPI))
	_, err := handler.GetPI(ctx, DefaultChannel)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "get PI")
	assert.ErrorIs(t, handler.SetRT(ctx, DefaultChannel, RadioText{}), ErrUnsupported)
	_, err = handler.GetRTC(ctx)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, handler.SetCommunicationMode(ctx, 1), ErrUnsupported)
}
