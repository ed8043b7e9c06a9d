package prais

import (
	"context"
	"fmt"

	"github.com/ftl/rds-encoder/rds"
)

var capabilities = rds.NewOperations(
	rds.GetPI, rds.SetPI,
	rds.GetPS, rds.SetPS,
	rds.SetRT,
	rds.GetDI, rds.SetDI,
	rds.GetDynamicPTY, rds.SetDynamicPTY,
	rds.GetTATP, rds.SetTATP,
	rds.GetMusicSpeech, rds.SetMusicSpeech,
	rds.GetPTY, rds.SetPTY,
	rds.SetRTC,
	rds.GetRDSOn, rds.SetRDSOn,
	rds.Store, rds.Reset,
)

// Handler implements the RDS operations for Prais units.
type Handler struct {
	rds.Unsupported
	codec *Codec
	flags rds.Flags
}

func NewHandler(codec *Codec, flags rds.Flags) *Handler {
	return &Handler{
		codec: codec,
		flags: flags,
	}
}

func (h *Handler) Supports(op rds.Operation) bool {
	return capabilities.Contains(op)
}

func (h *Handler) Codec() *Codec {
	return h.codec
}

func unsupported(op rds.Operation, reason string) error {
	return fmt.Errorf("%v %s: %w", op, reason, rds.ErrUnsupported)
}

// the unit supports only one programme
func singleProgramme(op rds.Operation, ch rds.Channel) error {
	if !ch.IsDefault() {
		return unsupported(op, fmt.Sprintf("on DSN %d PSN %d", ch.DSN, ch.PSN))
	}
	return nil
}

func (h *Handler) request(ctx context.Context, op rds.Operation, msg Message) ([]byte, error) {
	if h.codec.IsBroadcast() {
		return nil, unsupported(op, "on the broadcast address")
	}
	return h.codec.Request(ctx, msg)
}

func (h *Handler) post(ctx context.Context, msg Message) error {
	_, err := h.codec.Post(ctx, msg)
	return err
}

func (h *Handler) readTAMSDI(ctx context.Context, op rds.Operation, ch rds.Channel) (rds.FieldGroup, error) {
	err := singleProgramme(op, ch)
	if err != nil {
		return 0, err
	}
	data, err := h.request(ctx, op, TAMSDIRequest())
	if err != nil {
		return 0, err
	}
	return ParseTAMSDI(data)
}

// updateTAMSDI replaces the masked bits of the TAMSDI field. The current value is read first, unless the
// message is broadcast; then only the patch is sent.
func (h *Handler) updateTAMSDI(ctx context.Context, op rds.Operation, ch rds.Channel, patch rds.FieldGroup, mask rds.FieldGroup) error {
	err := singleProgramme(op, ch)
	if err != nil {
		return err
	}

	var current rds.FieldGroup
	if !h.codec.IsBroadcast() {
		current, err = h.readTAMSDI(ctx, op, ch)
		if err != nil {
			return err
		}
	}
	return h.post(ctx, TAMSDIMessage(current.Merge(patch, mask)))
}

func (h *Handler) GetPI(ctx context.Context, ch rds.Channel) (rds.PI, error) {
	err := singleProgramme(rds.GetPI, ch)
	if err != nil {
		return rds.PI{}, err
	}
	data, err := h.request(ctx, rds.GetPI, PIRequest())
	if err != nil {
		return rds.PI{}, err
	}
	return ParsePI(data)
}

func (h *Handler) SetPI(ctx context.Context, ch rds.Channel, pi rds.PI) error {
	err := singleProgramme(rds.SetPI, ch)
	if err != nil {
		return err
	}
	return h.post(ctx, PIMessage(pi))
}

func (h *Handler) GetPS(ctx context.Context, ch rds.Channel) (string, error) {
	if ch.PSN != 0 || ch.DSN > 2 {
		return "", unsupported(rds.GetPS, fmt.Sprintf("on DSN %d PSN %d", ch.DSN, ch.PSN))
	}
	data, err := h.request(ctx, rds.GetPS, PSRequest(ch))
	if err != nil {
		return "", err
	}
	return ParsePS(data), nil
}

func (h *Handler) SetPS(ctx context.Context, ch rds.Channel, ps string) error {
	dynamicPS := h.flags.Has(rds.HardwareDynamicPS)
	if (ch.PSN != 0 && !dynamicPS) || (ch.PSN > MaxPSIndex && dynamicPS) || ch.DSN > 2 {
		return unsupported(rds.SetPS, fmt.Sprintf("on DSN %d PSN %d", ch.DSN, ch.PSN))
	}
	return h.post(ctx, PSMessage(ch, ps, h.flags))
}

func (h *Handler) SetRT(ctx context.Context, ch rds.Channel, rt rds.RadioText) error {
	err := singleProgramme(rds.SetRT, ch)
	if err != nil {
		return err
	}
	if h.codec.IsBroadcast() {
		return unsupported(rds.SetRT, "on the broadcast address")
	}
	if rt.Buffer == rds.RTAppend {
		return unsupported(rds.SetRT, "with append buffer")
	}
	if rt.Text == "" {
		return h.setRTMode(ctx, RTModeOff)
	}

	h.codec.ResetSequence()
	data, err := h.codec.Request(ctx, RTStatusRequest())
	if err != nil {
		return err
	}
	pending, err := ParseRTStatus(data)
	if err != nil {
		return err
	}
	if pending {
		return fmt.Errorf("radiotext transmission pending: %w", rds.ErrBusy)
	}

	err = h.setRTMode(ctx, RTModeOff)
	if err != nil {
		return err
	}

	chunks := RTChunks(rt.Text)
	for pass := 0; pass < RTPasses; pass++ {
		for i, chunk := range chunks {
			_, err = h.codec.Exchange(ctx, chunk)
			if err != nil {
				return fmt.Errorf("radiotext chunk %d of pass %d: %w", i+1, pass+1, err)
			}
		}
	}

	mode := RTModeA
	if rt.Method == rds.RTMethodB {
		mode = RTModeB
	}
	return h.setRTMode(ctx, mode)
}

func (h *Handler) setRTMode(ctx context.Context, mode RTMode) error {
	for _, msg := range RTModeMessages(mode) {
		_, err := h.codec.Exchange(ctx, msg)
		if err != nil {
			return fmt.Errorf("setting radiotext mode %d: %w", mode, err)
		}
	}
	return nil
}

func (h *Handler) GetDI(ctx context.Context, ch rds.Channel) (rds.DI, error) {
	tamsdi, err := h.readTAMSDI(ctx, rds.GetDI, ch)
	if err != nil {
		return 0, err
	}
	return TAMSDIToDI(tamsdi), nil
}

func (h *Handler) SetDI(ctx context.Context, ch rds.Channel, di rds.DI) error {
	return h.updateTAMSDI(ctx, rds.SetDI, ch, DIToTAMSDI(di), TAMSDIDIMask)
}

func (h *Handler) GetDynamicPTY(ctx context.Context, ch rds.Channel) (bool, error) {
	tamsdi, err := h.readTAMSDI(ctx, rds.GetDynamicPTY, ch)
	if err != nil {
		return false, err
	}
	return tamsdi.Has(TAMSDIDynamicPTY), nil
}

func (h *Handler) SetDynamicPTY(ctx context.Context, ch rds.Channel, dynamic bool) error {
	return h.updateTAMSDI(ctx, rds.SetDynamicPTY, ch, DynamicPTYToTAMSDI(dynamic), TAMSDIDynamicPTY)
}

func (h *Handler) GetTATP(ctx context.Context, ch rds.Channel) (rds.TATP, error) {
	tamsdi, err := h.readTAMSDI(ctx, rds.GetTATP, ch)
	if err != nil {
		return 0, err
	}
	return TAMSDIToTATP(tamsdi), nil
}

func (h *Handler) SetTATP(ctx context.Context, ch rds.Channel, tatp rds.TATP) error {
	return h.updateTAMSDI(ctx, rds.SetTATP, ch, TATPToTAMSDI(tatp), TAMSDITATPMask)
}

func (h *Handler) GetMusicSpeech(ctx context.Context, ch rds.Channel) (rds.MusicSpeech, error) {
	tamsdi, err := h.readTAMSDI(ctx, rds.GetMusicSpeech, ch)
	if err != nil {
		return 0, err
	}
	return TAMSDIToMusicSpeech(tamsdi), nil
}

func (h *Handler) SetMusicSpeech(ctx context.Context, ch rds.Channel, ms rds.MusicSpeech) error {
	return h.updateTAMSDI(ctx, rds.SetMusicSpeech, ch, MusicSpeechToTAMSDI(ms), TAMSDIMusic)
}

func (h *Handler) GetPTY(ctx context.Context, ch rds.Channel) (rds.PTY, error) {
	err := singleProgramme(rds.GetPTY, ch)
	if err != nil {
		return 0, err
	}
	data, err := h.request(ctx, rds.GetPTY, PTYRequest())
	if err != nil {
		return 0, err
	}
	return ParsePTY(data)
}

func (h *Handler) SetPTY(ctx context.Context, ch rds.Channel, pty rds.PTY) error {
	err := singleProgramme(rds.SetPTY, ch)
	if err != nil {
		return err
	}
	if !pty.Valid() {
		return fmt.Errorf("pty %d out of range: %w", pty, rds.ErrInvalidArgument)
	}
	return h.post(ctx, PTYMessage(pty))
}

func (h *Handler) SetRTC(ctx context.Context, rtc rds.RTC) error {
	msg, err := RTCMessage(rtc)
	if err != nil {
		return err
	}
	return h.post(ctx, msg)
}

func (h *Handler) GetRDSOn(ctx context.Context) (bool, error) {
	data, err := h.request(ctx, rds.GetRDSOn, RDSOnRequest())
	if err != nil {
		return false, err
	}
	return ParseRDSOn(data)
}

func (h *Handler) SetRDSOn(ctx context.Context, on bool) error {
	return h.post(ctx, RDSOnMessage(on))
}

// Store makes the unit keep its current settings over a power cycle.
func (h *Handler) Store(ctx context.Context) error {
	if h.codec.IsBroadcast() {
		return unsupported(rds.Store, "on the broadcast address")
	}
	_, err := h.codec.Exchange(ctx, StoreRequest())
	return err
}

func (h *Handler) Reset(ctx context.Context) error {
	if h.codec.IsBroadcast() {
		return unsupported(rds.Reset, "on the broadcast address")
	}
	_, err := h.codec.Exchange(ctx, ResetRequest())
	return err
}
