package uecp

import (
	"fmt"

	"github.com/ftl/rds-encoder/rds"
)

// Bits of the DI/PTYI element [UECP] 3.3.5
const (
	DIStereo         rds.FieldGroup = 0x01
	DIArtificialHead rds.FieldGroup = 0x02
	DICompressed     rds.FieldGroup = 0x04
	DIDynamicPTY     rds.FieldGroup = 0x08

	DIMask = DIStereo | DIArtificialHead | DICompressed
)

func boolByte(value bool) byte {
	if value {
		return 1
	}
	return 0
}

// PIMessage: PI code, high byte first
func PIMessage(ch rds.Channel, pi rds.PI) *Message {
	code := pi.Code()
	return NewMessage(PI, ch, byte(code>>8), byte(code))
}

func PSMessage(ch rds.Channel, ps string) *Message {
	return NewMessage(PS, ch, []byte(rds.PadText(ps, rds.PSLength))...)
}

func PTYNMessage(ch rds.Channel, ptyn string) *Message {
	return NewMessage(PTYN, ch, []byte(rds.PadText(ptyn, rds.PTYNLength))...)
}

// RTMessage: configuration byte (method B in bit 0, retransmissions in bits 4-1, buffer in bits 6-5), then the text
func RTMessage(ch rds.Channel, rt rds.RadioText) *Message {
	var config byte
	if rt.Method == rds.RTMethodB {
		config |= 0x01
	}
	config |= (rt.Retransmissions & 0x0F) << 1
	config |= (byte(rt.Buffer) & 0x03) << 5

	text := rds.SanitizeText(rt.Text, rds.MaxRadioTextLength)
	data := make([]byte, 0, 1+len(text))
	data = append(data, config)
	data = append(data, text...)
	return NewMessage(RT, ch, data...)
}

// DIToField converts the DI flags into the DI part of the DI/PTYI element.
func DIToField(di rds.DI) rds.FieldGroup {
	return rds.FieldGroup(di) & DIMask
}

func DIPTYIMessage(ch rds.Channel, value rds.FieldGroup) *Message {
	return NewMessage(DIPTYI, ch, byte(value&(DIMask|DIDynamicPTY)))
}

func TATPMessage(ch rds.Channel, tatp rds.TATP) *Message {
	return NewMessage(TATP, ch, byte(tatp&rds.TATPMask))
}

func MSMessage(ch rds.Channel, ms rds.MusicSpeech) *Message {
	return NewMessage(MS, ch, boolByte(ms == rds.Music))
}

func PTYMessage(ch rds.Channel, pty rds.PTY) *Message {
	return NewMessage(PTY, ch, byte(pty&0x1F))
}

func CTMessage(enabled bool) *Message {
	return NewMessage(CT, rds.DefaultChannel, boolByte(enabled))
}

func RDSOnMessage(on bool) *Message {
	return NewMessage(RDSOn, rds.DefaultChannel, boolByte(on))
}

// UTCOffset encodes the offset as half hours in bits 4-0 and the sign in bit 5.
func UTCOffset(hours int) byte {
	halfHours := byte(int8(hours * 2))
	sign := (byte(int8(hours)) & 0x80) >> 2
	return (halfHours | sign) & 0x3F
}

// RTCMessage: year (last two digits), month, day, hour, minute, second, centisecond, UTC offset
func RTCMessage(rtc rds.RTC) (*Message, error) {
	err := rtc.Validate()
	if err != nil {
		return nil, err
	}
	return NewMessage(RTC, rds.DefaultChannel,
		byte(rtc.Year%100),
		byte(rtc.Month),
		byte(rtc.Day),
		byte(rtc.Hour),
		byte(rtc.Minute),
		byte(rtc.Second),
		byte(rtc.Centisecond),
		UTCOffset(rtc.Offset),
	), nil
}

// DSNSelectMessage switches the encoder's output to the given data set.
func DSNSelectMessage(dsn byte) *Message {
	return NewMessage(DSNSelect, rds.DefaultChannel, dsn)
}

// PSNEnableMessage enables or disables the programme service addressed by the channel.
func PSNEnableMessage(ch rds.Channel, enabled bool) *Message {
	return NewMessage(PSNEnable, ch, boolByte(enabled))
}

// SiteAddressMessage adds a site address to the encoder's address list.
func SiteAddressMessage(site uint16) (*Message, error) {
	if site > MaxSiteAddress {
		return nil, fmt.Errorf("site address %d out of range [0, %d]: %w", site, MaxSiteAddress, rds.ErrInvalidArgument)
	}
	return NewMessage(SiteAddress, rds.DefaultChannel, byte(site>>8), byte(site)), nil
}

// EncoderAddressMessage adds an encoder address to the encoder's address list.
func EncoderAddressMessage(encoder byte) (*Message, error) {
	if encoder > MaxEncoderAddress {
		return nil, fmt.Errorf("encoder address %d out of range [0, %d]: %w", encoder, MaxEncoderAddress, rds.ErrInvalidArgument)
	}
	return NewMessage(EncoderAddress, rds.DefaultChannel, encoder), nil
}

func CommunicationModeMessage(mode byte) (*Message, error) {
	if mode > BidirectionalSpontaneous {
		return nil, fmt.Errorf("unknown communication mode %d: %w", mode, rds.ErrInvalidArgument)
	}
	return NewMessage(CommunicationMode, rds.DefaultChannel, mode), nil
}
