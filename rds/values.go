package rds

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// PSLength is the fixed length of a programme service name.
	PSLength = 8
	// PTYNLength is the fixed length of a programme type name.
	PTYNLength = 8
	// MaxRadioTextLength is the maximum number of characters in one RadioText message.
	MaxRadioTextLength = 64
	// MaxRetransmissions is the largest number of RadioText retransmissions an encoder accepts.
	MaxRetransmissions = 15
	// MaxPTY is the largest defined programme type.
	MaxPTY PTY = 31
	// MinUTCOffset and MaxUTCOffset bound the local time offset in hours.
	MinUTCOffset = -12
	MaxUTCOffset = 14
)

// CountryCode combines the country code (bits 11-8) and the extended country code (bits 7-0), according to [IEC 62106] annex D.
type CountryCode uint16

// NewCountryCode combines the 4-bit country code with the extended country code.
func NewCountryCode(country byte, extended byte) CountryCode {
	return CountryCode(country&0x0F)<<8 | CountryCode(extended)
}

// Country returns the 4-bit country code that is part of the PI code.
func (c CountryCode) Country() byte {
	return byte((c & 0x0F00) >> 8)
}

// Extended returns the extended country code (ECC).
func (c CountryCode) Extended() byte {
	return byte(c & 0x00FF)
}

func (c CountryCode) String() string {
	return fmt.Sprintf("%03X", uint16(c)&0x0FFF)
}

// Countries returns all entries of the country table that use this code.
func (c CountryCode) Countries() []Country {
	var result []Country
	for _, country := range Countries {
		if country.Code == c {
			result = append(result, country)
		}
	}
	return result
}

// CountryCodesByISO returns the country codes of the country with the given ISO 3166 code.
func CountryCodesByISO(iso string) []CountryCode {
	iso = strings.ToUpper(iso)
	var result []CountryCode
	for _, country := range Countries {
		if country.ISO == iso {
			result = append(result, country.Code)
		}
	}
	return result
}

// Coverage enum according to [IEC 62106] annex D.
type Coverage byte

// All defined Coverage values
const (
	CoverageLocal Coverage = iota
	CoverageInternational
	CoverageNational
	CoverageSupraRegional
	CoverageRegional1
	CoverageRegional2
	CoverageRegional3
	CoverageRegional4
	CoverageRegional5
	CoverageRegional6
	CoverageRegional7
	CoverageRegional8
	CoverageRegional9
	CoverageRegional10
	CoverageRegional11
	CoverageRegional12
)

// CoverageByName allows to access the coverage areas by their name.
var CoverageByName = map[string]Coverage{
	"local":          CoverageLocal,
	"international":  CoverageInternational,
	"national":       CoverageNational,
	"supra-regional": CoverageSupraRegional,
	"regional1":      CoverageRegional1,
	"regional2":      CoverageRegional2,
	"regional3":      CoverageRegional3,
	"regional4":      CoverageRegional4,
	"regional5":      CoverageRegional5,
	"regional6":      CoverageRegional6,
	"regional7":      CoverageRegional7,
	"regional8":      CoverageRegional8,
	"regional9":      CoverageRegional9,
	"regional10":     CoverageRegional10,
	"regional11":     CoverageRegional11,
	"regional12":     CoverageRegional12,
}

func (c Coverage) String() string {
	for name, coverage := range CoverageByName {
		if coverage == c {
			return name
		}
	}
	return fmt.Sprintf("coverage(%d)", byte(c))
}

// PI is the Programme Identification according to [IEC 62106] 3.2.1.1.
type PI struct {
	Country            CountryCode
	Coverage           Coverage
	ProgrammeReference byte
}

// PIFromCode splits a 16-bit PI code. The extended country code is not part of the PI code and must be given separately.
func PIFromCode(code uint16, extended byte) PI {
	return PI{
		Country:            NewCountryCode(byte(code>>12), extended),
		Coverage:           Coverage((code >> 8) & 0x0F),
		ProgrammeReference: byte(code),
	}
}

// Code returns the 16-bit PI code as it is broadcast.
func (p PI) Code() uint16 {
	return uint16(p.Country.Country())<<12 | uint16(p.Coverage&0x0F)<<8 | uint16(p.ProgrammeReference)
}

func (p PI) String() string {
	return fmt.Sprintf("%04X (ECC %02X)", p.Code(), p.Country.Extended())
}

// DI is the set of decoder identification flags according to [IEC 62106] 3.2.1.5.
type DI byte

// All defined DI flags
const (
	DIStereo         DI = 0x1
	DIArtificialHead DI = 0x2
	DICompressed     DI = 0x4

	DIMask = DIStereo | DIArtificialHead | DICompressed
)

func (d DI) Has(flag DI) bool {
	return d&flag == flag
}

func (d DI) String() string {
	var names []string
	if d.Has(DIStereo) {
		names = append(names, "stereo")
	}
	if d.Has(DIArtificialHead) {
		names = append(names, "artificial-head")
	}
	if d.Has(DICompressed) {
		names = append(names, "compressed")
	}
	if len(names) == 0 {
		return "mono"
	}
	return strings.Join(names, ",")
}

// TATP combines the traffic announcement and traffic programme flags.
type TATP byte

// All defined TATP flags
const (
	TATPOff TATP = 0x0
	TA      TATP = 0x1
	TP      TATP = 0x2

	TATPMask = TA | TP
)

func (t TATP) Has(flag TATP) bool {
	return t&flag == flag
}

// MusicSpeech is the music/speech switch.
type MusicSpeech byte

// All defined MusicSpeech values
const (
	Music  MusicSpeech = 0x1
	Speech MusicSpeech = 0x2
)

func (m MusicSpeech) String() string {
	switch m {
	case Music:
		return "music"
	case Speech:
		return "speech"
	default:
		return fmt.Sprintf("ms(%d)", byte(m))
	}
}

// RTMethod selects how a RadioText message is transmitted, according to [UECP] 3.3.7.
type RTMethod byte

// All defined RTMethod values
const (
	RTMethodA RTMethod = 0x1
	RTMethodB RTMethod = 0x2
)

// RTBuffer selects how a new RadioText message treats the encoder's message buffer.
type RTBuffer byte

// All defined RTBuffer values
const (
	RTFlush  RTBuffer = 0x0
	RTAppend RTBuffer = 0x2
)

// RadioText is one RadioText message with its transmission settings.
type RadioText struct {
	Text            string
	Method          RTMethod
	Retransmissions byte
	Buffer          RTBuffer
}

// Validate checks the ranges of all fields.
func (r RadioText) Validate() error {
	length := utf8.RuneCountInString(r.Text)
	if length > MaxRadioTextLength {
		return fmt.Errorf("radiotext has %d characters, at most %d are allowed: %w", length, MaxRadioTextLength, ErrInvalidArgument)
	}
	if r.Retransmissions > MaxRetransmissions {
		return fmt.Errorf("%d retransmissions, at most %d are allowed: %w", r.Retransmissions, MaxRetransmissions, ErrInvalidArgument)
	}
	if r.Method != 0 && r.Method != RTMethodA && r.Method != RTMethodB {
		return fmt.Errorf("unknown radiotext method %d: %w", r.Method, ErrInvalidArgument)
	}
	return nil
}

// RTC is the setting of an encoder's real time clock. Offset is the local time offset to UTC in hours.
type RTC struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Centisecond int
	Offset      int
}

// RTCFromTime converts the given time into an RTC setting, using the time's location for the offset.
// The offset is truncated toward zero to whole hours, so +5:30 becomes +5 and -3:30 becomes -3.
func RTCFromTime(t time.Time) RTC {
	_, offset := t.Zone()
	return RTC{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Centisecond: t.Nanosecond() / int(10*time.Millisecond),
		Offset:      offset / 3600,
	}
}

// Validate checks the ranges of all fields.
func (r RTC) Validate() error {
	check := func(name string, value, min, max int) error {
		if value < min || value > max {
			return fmt.Errorf("%s %d out of range [%d, %d]: %w", name, value, min, max, ErrInvalidArgument)
		}
		return nil
	}
	checks := []error{
		check("year", r.Year, 0, 9999),
		check("month", r.Month, 1, 12),
		check("day", r.Day, 1, 31),
		check("hour", r.Hour, 0, 24),
		check("minute", r.Minute, 0, 59),
		check("second", r.Second, 0, 59),
		check("centisecond", r.Centisecond, 0, 99),
		check("offset", r.Offset, MinUTCOffset, MaxUTCOffset),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

func (r RTC) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%02d UTC%+d", r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second, r.Centisecond, r.Offset)
}
