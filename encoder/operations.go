package encoder

import (
	"context"
	"fmt"

	"github.com/ftl/rds-encoder/rds"
)

var _ rds.Handler = (*Session)(nil)

func validatePTY(pty rds.PTY) func() error {
	return func() error {
		if !pty.Valid() {
			return fmt.Errorf("PTY %d out of range [0, %d]: %w", pty, rds.MaxPTY, rds.ErrInvalidArgument)
		}
		return nil
	}
}

func validateRT(rt rds.RadioText) func() error {
	return func() error {
		err := rt.Validate()
		if err != nil {
			return err
		}
		if rt.Buffer == rds.RTAppend {
			return fmt.Errorf("appending to the radiotext buffer: %w", rds.ErrUnsupported)
		}
		return nil
	}
}

func (s *Session) GetPI(ctx context.Context, ch rds.Channel) (rds.PI, error) {
	var result rds.PI
	err := s.run(rds.GetPI, nil, func() (err error) {
		result, err = s.handler.GetPI(ctx, ch)
		return err
	})
	return result, err
}

func (s *Session) SetPI(ctx context.Context, ch rds.Channel, pi rds.PI) error {
	return s.run(rds.SetPI, nil, func() error {
		return s.handler.SetPI(ctx, ch, pi)
	})
}

func (s *Session) GetPS(ctx context.Context, ch rds.Channel) (string, error) {
	var result string
	err := s.run(rds.GetPS, nil, func() (err error) {
		result, err = s.handler.GetPS(ctx, ch)
		return err
	})
	return result, err
}

func (s *Session) SetPS(ctx context.Context, ch rds.Channel, ps string) error {
	return s.run(rds.SetPS, nil, func() error {
		return s.handler.SetPS(ctx, ch, ps)
	})
}

func (s *Session) GetRT(ctx context.Context, ch rds.Channel) (rds.RadioText, error) {
	var result rds.RadioText
	err := s.run(rds.GetRT, nil, func() (err error) {
		result, err = s.handler.GetRT(ctx, ch)
		return err
	})
	return result, err
}

// SetRT replaces the radiotext. Appending to the encoder's buffer is not supported.
func (s *Session) SetRT(ctx context.Context, ch rds.Channel, rt rds.RadioText) error {
	return s.run(rds.SetRT, validateRT(rt), func() error {
		return s.handler.SetRT(ctx, ch, rt)
	})
}

func (s *Session) GetDI(ctx context.Context, ch rds.Channel) (rds.DI, error) {
	var result rds.DI
	err := s.run(rds.GetDI, nil, func() (err error) {
		result, err = s.handler.GetDI(ctx, ch)
		return err
	})
	return result, err
}

func (s *Session) SetDI(ctx context.Context, ch rds.Channel, di rds.DI) error {
	return s.run(rds.SetDI, nil, func() error {
		return s.handler.SetDI(ctx, ch, di)
	})
}

func (s *Session) GetDynamicPTY(ctx context.Context, ch rds.Channel) (bool, error) {
	var result bool
	err := s.run(rds.GetDynamicPTY, nil, func() (err error) {
		result, err = s.handler.GetDynamicPTY(ctx, ch)
		return err
	})
	return result, err
}

func (s *Session) SetDynamicPTY(ctx context.Context, ch rds.Channel, dynamic bool) error {
	return s.run(rds.SetDynamicPTY, nil, func() error {
		return s.handler.SetDynamicPTY(ctx, ch, dynamic)
	})
}

func (s *Session) GetTATP(ctx context.Context, ch rds.Channel) (rds.TATP, error) {
	var result rds.TATP
	err := s.run(rds.GetTATP, nil, func() (err error) {
		result, err = s.handler.GetTATP(ctx, ch)
		return err
	})
	return result, err
}

func (s *Session) SetTATP(ctx context.Context, ch rds.Channel, tatp rds.TATP) error {
	return s.run(rds.SetTATP, nil, func() error {
		return s.handler.SetTATP(ctx, ch, tatp)
	})
}

func (s *Session) GetMusicSpeech(ctx context.Context, ch rds.Channel) (rds.MusicSpeech, error) {
	var result rds.MusicSpeech
	err := s.run(rds.GetMusicSpeech, nil, func() (err error) {
		result, err = s.handler.GetMusicSpeech(ctx, ch)
		return err
	})
	return result, err
}

func (s *Session) SetMusicSpeech(ctx context.Context, ch rds.Channel, ms rds.MusicSpeech) error {
	return s.run(rds.SetMusicSpeech, nil, func() error {
		return s.handler.SetMusicSpeech(ctx, ch, ms)
	})
}

func (s *Session) GetPTY(ctx context.Context, ch rds.Channel) (rds.PTY, error) {
	var result rds.PTY
	err := s.run(rds.GetPTY, nil, func() (err error) {
		result, err = s.handler.GetPTY(ctx, ch)
		return err
	})
	return result, err
}

func (s *Session) SetPTY(ctx context.Context, ch rds.Channel, pty rds.PTY) error {
	return s.run(rds.SetPTY, validatePTY(pty), func() error {
		return s.handler.SetPTY(ctx, ch, pty)
	})
}

func (s *Session) GetPTYN(ctx context.Context, ch rds.Channel) (string, error) {
	var result string
	err := s.run(rds.GetPTYN, nil, func() (err error) {
		result, err = s.handler.GetPTYN(ctx, ch)
		return err
	})
	return result, err
}

func (s *Session) SetPTYN(ctx context.Context, ch rds.Channel, ptyn string) error {
	return s.run(rds.SetPTYN, nil, func() error {
		return s.handler.SetPTYN(ctx, ch, ptyn)
	})
}

func (s *Session) GetCT(ctx context.Context) (bool, error) {
	var result bool
	err := s.run(rds.GetCT, nil, func() (err error) {
		result, err = s.handler.GetCT(ctx)
		return err
	})
	return result, err
}

func (s *Session) SetCT(ctx context.Context, enabled bool) error {
	return s.run(rds.SetCT, nil, func() error {
		return s.handler.SetCT(ctx, enabled)
	})
}

func (s *Session) GetRTC(ctx context.Context) (rds.RTC, error) {
	var result rds.RTC
	err := s.run(rds.GetRTC, nil, func() (err error) {
		result, err = s.handler.GetRTC(ctx)
		return err
	})
	return result, err
}

// SetRTC sets the encoder's real time clock. All fields are checked before anything is sent.
func (s *Session) SetRTC(ctx context.Context, rtc rds.RTC) error {
	return s.run(rds.SetRTC, rtc.Validate, func() error {
		return s.handler.SetRTC(ctx, rtc)
	})
}

func (s *Session) GetRDSOn(ctx context.Context) (bool, error) {
	var result bool
	err := s.run(rds.GetRDSOn, nil, func() (err error) {
		result, err = s.handler.GetRDSOn(ctx)
		return err
	})
	return result, err
}

func (s *Session) SetRDSOn(ctx context.Context, on bool) error {
	return s.run(rds.SetRDSOn, nil, func() error {
		return s.handler.SetRDSOn(ctx, on)
	})
}

// Store makes the encoder keep its current settings across power cycles.
func (s *Session) Store(ctx context.Context) error {
	return s.run(rds.Store, nil, func() error {
		return s.handler.Store(ctx)
	})
}

func (s *Session) Reset(ctx context.Context) error {
	return s.run(rds.Reset, nil, func() error {
		return s.handler.Reset(ctx)
	})
}

// SelectDataSet activates the given data set, according to [UECP] 3.3.27.
func (s *Session) SelectDataSet(ctx context.Context, dsn byte) error {
	return s.run(rds.SelectDataSet, nil, func() error {
		return s.handler.SelectDataSet(ctx, dsn)
	})
}

func (s *Session) EnablePS(ctx context.Context, ch rds.Channel, enabled bool) error {
	return s.run(rds.EnablePS, nil, func() error {
		return s.handler.EnablePS(ctx, ch, enabled)
	})
}

func (s *Session) AddSiteAddress(ctx context.Context, site uint16) error {
	return s.run(rds.AddSiteAddress, nil, func() error {
		return s.handler.AddSiteAddress(ctx, site)
	})
}

func (s *Session) AddEncoderAddress(ctx context.Context, encoder byte) error {
	return s.run(rds.AddEncoderAddress, nil, func() error {
		return s.handler.AddEncoderAddress(ctx, encoder)
	})
}

func (s *Session) SetCommunicationMode(ctx context.Context, mode byte) error {
	return s.run(rds.SetCommunicationMode, nil, func() error {
		return s.handler.SetCommunicationMode(ctx, mode)
	})
}
