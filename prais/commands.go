package prais

import (
	"fmt"

	"github.com/ftl/rds-encoder/rds"
)

var errNoReplyFrame = fmt.Errorf("unit only acknowledged the request: %w", rds.ErrProtocolViolation)

func errShortReply(t MessageType, expected, actual int) error {
	return fmt.Errorf("%v reply has %d bytes, expected at least %d: %w", t, actual, expected, rds.ErrProtocolViolation)
}

/* TAMSDI */

// Bits of the TAMSDI field
const (
	TAMSDIStereo         rds.FieldGroup = 0x01
	TAMSDITA             rds.FieldGroup = 0x02
	TAMSDITP             rds.FieldGroup = 0x04
	TAMSDIArtificialHead rds.FieldGroup = 0x08
	TAMSDICompressed     rds.FieldGroup = 0x10
	TAMSDIDynamicPTY     rds.FieldGroup = 0x20
	TAMSDIMusic          rds.FieldGroup = 0x40
	// TAMSDITATPOn is reported by the unit when both TA and TP are on. It is never written.
	TAMSDITATPOn rds.FieldGroup = 0x80

	TAMSDIDIMask   = TAMSDIStereo | TAMSDIArtificialHead | TAMSDICompressed
	TAMSDITATPMask = TAMSDITA | TAMSDITP
)

func TAMSDIRequest() Message {
	return Message{Type: TAMSDI}
}

func TAMSDIMessage(value rds.FieldGroup) Message {
	return Message{Type: TAMSDI, Data: []byte{byte(value)}}
}

func ParseTAMSDI(data []byte) (rds.FieldGroup, error) {
	if len(data) < 1 {
		return 0, errShortReply(TAMSDI, 1, len(data))
	}
	return rds.FieldGroup(data[0]) &^ TAMSDITATPOn, nil
}

func DIToTAMSDI(di rds.DI) rds.FieldGroup {
	var result rds.FieldGroup
	result = result.Set(TAMSDIStereo, di.Has(rds.DIStereo))
	result = result.Set(TAMSDIArtificialHead, di.Has(rds.DIArtificialHead))
	result = result.Set(TAMSDICompressed, di.Has(rds.DICompressed))
	return result
}

func TAMSDIToDI(value rds.FieldGroup) rds.DI {
	var result rds.DI
	if value.Has(TAMSDIStereo) {
		result |= rds.DIStereo
	}
	if value.Has(TAMSDIArtificialHead) {
		result |= rds.DIArtificialHead
	}
	if value.Has(TAMSDICompressed) {
		result |= rds.DICompressed
	}
	return result
}

func TATPToTAMSDI(tatp rds.TATP) rds.FieldGroup {
	var result rds.FieldGroup
	result = result.Set(TAMSDITA, tatp.Has(rds.TA))
	result = result.Set(TAMSDITP, tatp.Has(rds.TP))
	return result
}

func TAMSDIToTATP(value rds.FieldGroup) rds.TATP {
	var result rds.TATP
	if value.Has(TAMSDITA) {
		result |= rds.TA
	}
	if value.Has(TAMSDITP) {
		result |= rds.TP
	}
	return result
}

func MusicSpeechToTAMSDI(ms rds.MusicSpeech) rds.FieldGroup {
	if ms == rds.Music {
		return TAMSDIMusic
	}
	return 0
}

func TAMSDIToMusicSpeech(value rds.FieldGroup) rds.MusicSpeech {
	if value.Has(TAMSDIMusic) {
		return rds.Music
	}
	return rds.Speech
}

func DynamicPTYToTAMSDI(dynamic bool) rds.FieldGroup {
	return rds.FieldGroup(0).Set(TAMSDIDynamicPTY, dynamic)
}

/* PI */

func PIRequest() Message {
	return Message{Type: PI}
}

// PIMessage: country code and coverage, programme reference number, extended country code
func PIMessage(pi rds.PI) Message {
	return Message{Type: PI, Data: []byte{
		pi.Country.Country()<<4 | byte(pi.Coverage&0x0F),
		pi.ProgrammeReference,
		pi.Country.Extended(),
	}}
}

func ParsePI(data []byte) (rds.PI, error) {
	if len(data) < 3 {
		return rds.PI{}, errShortReply(PI, 3, len(data))
	}
	return rds.PI{
		Country:            rds.NewCountryCode(data[0]>>4, data[2]),
		Coverage:           rds.Coverage(data[0] & 0x0F),
		ProgrammeReference: data[1],
	}, nil
}

/* PS */

// PS commands
const (
	psSet     byte = 0
	psRequest byte = 1
	psDisable byte = 2

	psGroup2 byte = 0x80
	// MaxPSIndex is the highest PS index of units with HardwareDynamicPS.
	MaxPSIndex = 14
)

// Display durations of a PS name
const (
	psDurationStatic    byte = 0
	psDurationFirst     byte = 10
	psDurationFollowing byte = 4
	psDurationDisabled  byte = 0xFF
)

func psIndex(ch rds.Channel) byte {
	result := ch.PSN
	if ch.DSN == 2 {
		result |= psGroup2
	}
	return result
}

func PSRequest(ch rds.Channel) Message {
	return Message{Type: PS, Data: []byte{psRequest, psIndex(ch)}}
}

// PSMessage sets or, if ps is empty, disables the PS name with the channel's group and index.
func PSMessage(ch rds.Channel, ps string, flags rds.Flags) Message {
	command := psSet
	duration := psDurationStatic
	switch {
	case ps == "":
		command = psDisable
		duration = psDurationDisabled
	case flags.Has(rds.HardwareDynamicPS) && ch.PSN == 0:
		duration = psDurationFirst
	case flags.Has(rds.HardwareDynamicPS):
		duration = psDurationFollowing
	}

	data := make([]byte, 0, 3+rds.PSLength)
	data = append(data, command, psIndex(ch), duration)
	data = append(data, rds.PadText(ps, rds.PSLength)...)
	return Message{Type: PS, Data: data}
}

// ParsePS returns the PS name in the reply. Short replies only carry the index and no name.
func ParsePS(data []byte) string {
	if len(data) < 3 {
		return ""
	}
	return string(data[2:])
}

/* PTY */

func PTYRequest() Message {
	return Message{Type: PTY}
}

func PTYMessage(pty rds.PTY) Message {
	return Message{Type: PTY, Data: []byte{byte(pty)}}
}

func ParsePTY(data []byte) (rds.PTY, error) {
	if len(data) < 1 {
		return 0, errShortReply(PTY, 1, len(data))
	}
	return rds.PTY(data[0]), nil
}

/* RDS on */

func RDSOnRequest() Message {
	return Message{Type: RDSOn}
}

func RDSOnMessage(on bool) Message {
	return Message{Type: RDSOn, Data: []byte{boolByte(on)}}
}

func ParseRDSOn(data []byte) (bool, error) {
	if len(data) < 1 {
		return false, errShortReply(RDSOn, 1, len(data))
	}
	return data[0] != 0, nil
}

func boolByte(value bool) byte {
	if value {
		return 1
	}
	return 0
}

/* RT */

// RTMode is the transmission state of the RadioText.
type RTMode byte

// All defined RT modes
const (
	RTModeOff RTMode = 0
	RTModeA   RTMode = 1
	RTModeB   RTMode = 2
)

const (
	// RTBufferSize is the number of characters the unit's RadioText buffer holds.
	RTBufferSize = 64
	// RTSegmentGap is the number of spaces between replicated RadioText messages.
	RTSegmentGap = 2
	// RTChunkSize is the number of characters transferred with one message.
	RTChunkSize = 4
	// RTPasses is how often the whole buffer is transferred.
	RTPasses = 4

	rtStatusPending byte = 1
)

func RTStatusRequest() Message {
	return Message{Type: RT}
}

// ParseRTStatus reports if a RadioText transmission is pending.
func ParseRTStatus(data []byte) (bool, error) {
	if len(data) < 1 {
		return false, errShortReply(RT, 1, len(data))
	}
	return data[0] == rtStatusPending, nil
}

// RTModeMessages returns the messages that switch the RadioText transmission to the given mode.
func RTModeMessages(mode RTMode) []Message {
	switch mode {
	case RTModeA:
		return []Message{
			{Type: RT, Data: []byte{0, 0}},
			{Type: RT, Data: []byte{1}},
		}
	case RTModeB:
		return []Message{
			{Type: RT, Data: []byte{0, 0x40}},
			{Type: RT, Data: []byte{2}},
		}
	default:
		return []Message{
			{Type: RT, Data: []byte{0}},
		}
	}
}

// RTChunks replicates the text over the unit's buffer and splits the buffer into the chunk messages of one pass.
func RTChunks(text string) []Message {
	buffer := rds.PadText(rds.ReplicateRadioText(rds.SanitizeText(text, rds.MaxRadioTextLength), RTBufferSize, RTSegmentGap), RTBufferSize)
	result := make([]Message, 0, RTBufferSize/RTChunkSize)
	for i := 0; i < RTBufferSize; i += RTChunkSize {
		result = append(result, Message{Type: RT, Data: []byte(buffer[i : i+RTChunkSize])})
	}
	return result
}

/* RTC */

const (
	minRTCYear = 1900
	maxRTCYear = minRTCYear + 255
)

func bcd(value int) byte {
	return byte((value/10)<<4 | value%10)
}

// UTCOffset encodes the offset as half hours in bits 4-0, the sign in bit 5.
// The magnitude is taken from the two's complement, as the unit's own software does.
func UTCOffset(hours int) byte {
	result := byte(int8(hours*2)) & 0x1F
	if hours < 0 {
		result |= 0x20
	}
	return result
}

// RTCMessage: BCD hour, BCD minute, BCD day, BCD month, years since 1900, UTC offset
func RTCMessage(rtc rds.RTC) (Message, error) {
	err := rtc.Validate()
	if err != nil {
		return Message{}, err
	}
	if rtc.Year < minRTCYear || rtc.Year > maxRTCYear {
		return Message{}, fmt.Errorf("year %d out of range [%d, %d]: %w", rtc.Year, minRTCYear, maxRTCYear, rds.ErrInvalidArgument)
	}
	return Message{Type: RTC, Data: []byte{
		bcd(rtc.Hour),
		bcd(rtc.Minute),
		bcd(rtc.Day),
		bcd(rtc.Month),
		byte(rtc.Year - minRTCYear),
		UTCOffset(rtc.Offset),
	}}, nil
}

/* Unit */

func StoreRequest() Message {
	return Message{Type: Store}
}

func ResetRequest() Message {
	return Message{Type: Reset}
}
