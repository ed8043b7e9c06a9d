package uecp

import (
	"context"
	"fmt"

	"github.com/ftl/rds-encoder/rds"
)

var capabilities = rds.NewOperations(
	rds.SetPI,
	rds.SetPS,
	rds.SetRT,
	rds.SetDI,
	rds.SetDynamicPTY,
	rds.SetTATP,
	rds.SetMusicSpeech,
	rds.SetPTY,
	rds.SetPTYN,
	rds.SetCT,
	rds.SetRTC,
	rds.SetRDSOn,
	rds.SelectDataSet,
	rds.EnablePS,
	rds.AddSiteAddress,
	rds.AddEncoderAddress,
	rds.SetCommunicationMode,
)

// Handler implements the RDS operations for UECP encoders.
type Handler struct {
	rds.Unsupported
	codec *Codec

	// DI and the dynamic PTY indicator share one element. The encoder is never asked for the current value,
	// so the last written value of every channel is kept here.
	diPTYI map[rds.Channel]rds.FieldGroup
}

func NewHandler(codec *Codec) *Handler {
	return &Handler{
		codec:  codec,
		diPTYI: make(map[rds.Channel]rds.FieldGroup),
	}
}

func (h *Handler) Supports(op rds.Operation) bool {
	return capabilities.Contains(op)
}

func (h *Handler) Codec() *Codec {
	return h.codec
}

func (h *Handler) SetPI(ctx context.Context, ch rds.Channel, pi rds.PI) error {
	return h.codec.Send(ctx, PIMessage(ch, pi))
}

func (h *Handler) SetPS(ctx context.Context, ch rds.Channel, ps string) error {
	return h.codec.Send(ctx, PSMessage(ch, ps))
}

func (h *Handler) SetRT(ctx context.Context, ch rds.Channel, rt rds.RadioText) error {
	err := rt.Validate()
	if err != nil {
		return err
	}
	return h.codec.Send(ctx, RTMessage(ch, rt))
}

func (h *Handler) updateDIPTYI(ctx context.Context, ch rds.Channel, patch rds.FieldGroup, mask rds.FieldGroup) error {
	value := h.diPTYI[ch].Merge(patch, mask)
	err := h.codec.Send(ctx, DIPTYIMessage(ch, value))
	if err != nil {
		return err
	}
	h.diPTYI[ch] = value
	return nil
}

func (h *Handler) SetDI(ctx context.Context, ch rds.Channel, di rds.DI) error {
	return h.updateDIPTYI(ctx, ch, DIToField(di), DIMask)
}

func (h *Handler) SetDynamicPTY(ctx context.Context, ch rds.Channel, dynamic bool) error {
	return h.updateDIPTYI(ctx, ch, rds.FieldGroup(0).Set(DIDynamicPTY, dynamic), DIDynamicPTY)
}

func (h *Handler) SetTATP(ctx context.Context, ch rds.Channel, tatp rds.TATP) error {
	return h.codec.Send(ctx, TATPMessage(ch, tatp))
}

func (h *Handler) SetMusicSpeech(ctx context.Context, ch rds.Channel, ms rds.MusicSpeech) error {
	return h.codec.Send(ctx, MSMessage(ch, ms))
}

func (h *Handler) SetPTY(ctx context.Context, ch rds.Channel, pty rds.PTY) error {
	if !pty.Valid() {
		return fmt.Errorf("pty %d out of range: %w", pty, rds.ErrInvalidArgument)
	}
	return h.codec.Send(ctx, PTYMessage(ch, pty))
}

func (h *Handler) SetPTYN(ctx context.Context, ch rds.Channel, ptyn string) error {
	return h.codec.Send(ctx, PTYNMessage(ch, ptyn))
}

// SetCT enables or disables the transmission of the clock time (group 4A).
func (h *Handler) SetCT(ctx context.Context, enabled bool) error {
	return h.codec.Send(ctx, CTMessage(enabled))
}

func (h *Handler) SetRTC(ctx context.Context, rtc rds.RTC) error {
	msg, err := RTCMessage(rtc)
	if err != nil {
		return err
	}
	return h.codec.Send(ctx, msg)
}

func (h *Handler) SetRDSOn(ctx context.Context, on bool) error {
	return h.codec.Send(ctx, RDSOnMessage(on))
}

func (h *Handler) SelectDataSet(ctx context.Context, dsn byte) error {
	return h.codec.Send(ctx, DSNSelectMessage(dsn))
}

func (h *Handler) EnablePS(ctx context.Context, ch rds.Channel, enabled bool) error {
	return h.codec.Send(ctx, PSNEnableMessage(ch, enabled))
}

func (h *Handler) AddSiteAddress(ctx context.Context, site uint16) error {
	msg, err := SiteAddressMessage(site)
	if err != nil {
		return err
	}
	return h.codec.Send(ctx, msg)
}

func (h *Handler) AddEncoderAddress(ctx context.Context, encoder byte) error {
	msg, err := EncoderAddressMessage(encoder)
	if err != nil {
		return err
	}
	return h.codec.Send(ctx, msg)
}

func (h *Handler) SetCommunicationMode(ctx context.Context, mode byte) error {
	msg, err := CommunicationModeMessage(mode)
	if err != nil {
		return err
	}
	return h.codec.Send(ctx, msg)
}
