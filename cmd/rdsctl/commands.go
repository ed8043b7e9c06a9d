package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ftl/rds-encoder/encoder"
	"github.com/ftl/rds-encoder/rds"
	"github.com/ftl/rds-encoder/uecp"
)

// request carries everything a parameter needs to run against the encoder.
type request struct {
	session *encoder.Session
	channel rds.Channel
	rt      rds.RadioText
	args    []string
	out     io.Writer
}

// parameter is one encoder setting. Without arguments it is read, with arguments it is written.
// Actions have no get.
type parameter struct {
	usage string
	args  int // minimum number of arguments to write
	get   func(context.Context, request) (fmt.Stringer, error)
	set   func(context.Context, request) error
}

type text string

func (t text) String() string { return string(t) }

type onOff bool

func (f onOff) String() string {
	if f {
		return "on"
	}
	return "off"
}

var parameters = map[string]parameter{
	"pi": {
		usage: "[CODE [ECC|ISO]]  programme identification, hex; the ECC may be given as ISO country code",
		args:  1,
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			pi, err := r.session.GetPI(ctx, r.channel)
			if err != nil {
				return nil, err
			}
			names := countryNames(pi)
			if names == "" {
				return pi, nil
			}
			return text(fmt.Sprintf("%v %s", pi, names)), nil
		},
		set: func(ctx context.Context, r request) error {
			pi, err := parsePI(r.args)
			if err != nil {
				return err
			}
			return r.session.SetPI(ctx, r.channel, pi)
		},
	},
	"ps": {
		usage: "[NAME]  programme service name",
		args:  1,
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			ps, err := r.session.GetPS(ctx, r.channel)
			return text(strconv.Quote(ps)), err
		},
		set: func(ctx context.Context, r request) error {
			return r.session.SetPS(ctx, r.channel, strings.Join(r.args, " "))
		},
	},
	"rt": {
		usage: "TEXT  radiotext, see --rt-method and --rt-retransmissions",
		args:  1,
		set: func(ctx context.Context, r request) error {
			rt := r.rt
			rt.Text = strings.Join(r.args, " ")
			return r.session.SetRT(ctx, r.channel, rt)
		},
	},
	"di": {
		usage: "[mono|stereo,artificial-head,compressed]  decoder identification",
		args:  1,
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			return r.session.GetDI(ctx, r.channel)
		},
		set: func(ctx context.Context, r request) error {
			di, err := parseDI(r.args[0])
			if err != nil {
				return err
			}
			return r.session.SetDI(ctx, r.channel, di)
		},
	},
	"dynpty": {
		usage: "[on|off]  dynamic programme type",
		args:  1,
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			dynamic, err := r.session.GetDynamicPTY(ctx, r.channel)
			return onOff(dynamic), err
		},
		set: func(ctx context.Context, r request) error {
			dynamic, err := parseFlag(r.args[0])
			if err != nil {
				return err
			}
			return r.session.SetDynamicPTY(ctx, r.channel, dynamic)
		},
	},
	"tatp": {
		usage: "[off|ta|tp|ta,tp]  traffic announcement and traffic programme",
		args:  1,
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			tatp, err := r.session.GetTATP(ctx, r.channel)
			return text(formatTATP(tatp)), err
		},
		set: func(ctx context.Context, r request) error {
			tatp, err := parseTATP(r.args[0])
			if err != nil {
				return err
			}
			return r.session.SetTATP(ctx, r.channel, tatp)
		},
	},
	"ms": {
		usage: "[music|speech]  music/speech switch",
		args:  1,
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			return r.session.GetMusicSpeech(ctx, r.channel)
		},
		set: func(ctx context.Context, r request) error {
			var ms rds.MusicSpeech
			switch strings.ToLower(r.args[0]) {
			case "music", "m":
				ms = rds.Music
			case "speech", "s":
				ms = rds.Speech
			default:
				return fmt.Errorf("%q is neither music nor speech: %w", r.args[0], rds.ErrInvalidArgument)
			}
			return r.session.SetMusicSpeech(ctx, r.channel, ms)
		},
	},
	"pty": {
		usage: "[NUMBER|NAME]  programme type",
		args:  1,
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			pty, err := r.session.GetPTY(ctx, r.channel)
			return text(fmt.Sprintf("%d %s", pty, pty)), err
		},
		set: func(ctx context.Context, r request) error {
			pty, err := parsePTY(strings.Join(r.args, " "))
			if err != nil {
				return err
			}
			return r.session.SetPTY(ctx, r.channel, pty)
		},
	},
	"ptyn": {
		usage: "[NAME]  programme type name",
		args:  1,
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			ptyn, err := r.session.GetPTYN(ctx, r.channel)
			return text(strconv.Quote(ptyn)), err
		},
		set: func(ctx context.Context, r request) error {
			return r.session.SetPTYN(ctx, r.channel, strings.Join(r.args, " "))
		},
	},
	"ct": {
		usage: "[on|off]  clock time transmission",
		args:  1,
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			enabled, err := r.session.GetCT(ctx)
			return onOff(enabled), err
		},
		set: func(ctx context.Context, r request) error {
			enabled, err := parseFlag(r.args[0])
			if err != nil {
				return err
			}
			return r.session.SetCT(ctx, enabled)
		},
	},
	"rtc": {
		usage: "[now|RFC3339]  real time clock",
		args:  1,
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			return r.session.GetRTC(ctx)
		},
		set: func(ctx context.Context, r request) error {
			rtc, err := parseRTC(r.args[0], time.Now())
			if err != nil {
				return err
			}
			return r.session.SetRTC(ctx, rtc)
		},
	},
	"rds": {
		usage: "[on|off]  RDS output",
		args:  1,
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			on, err := r.session.GetRDSOn(ctx)
			return onOff(on), err
		},
		set: func(ctx context.Context, r request) error {
			on, err := parseFlag(r.args[0])
			if err != nil {
				return err
			}
			return r.session.SetRDSOn(ctx, on)
		},
	},
	"store": {
		usage: "  keep the current settings across power cycles",
		set: func(ctx context.Context, r request) error {
			return r.session.Store(ctx)
		},
	},
	"reset": {
		usage: "  reset the encoder",
		set: func(ctx context.Context, r request) error {
			return r.session.Reset(ctx)
		},
	},
	"dataset": {
		usage: "DSN  activate a data set",
		args:  1,
		set: func(ctx context.Context, r request) error {
			dsn, err := parseByte(r.args[0])
			if err != nil {
				return err
			}
			return r.session.SelectDataSet(ctx, dsn)
		},
	},
	"enable-ps": {
		usage: "on|off  enable the programme service selected by --dsn and --psn",
		args:  1,
		set: func(ctx context.Context, r request) error {
			enabled, err := parseFlag(r.args[0])
			if err != nil {
				return err
			}
			return r.session.EnablePS(ctx, r.channel, enabled)
		},
	},
	"site": {
		usage: "ADDRESS  add a site address to the encoder",
		args:  1,
		set: func(ctx context.Context, r request) error {
			site, err := strconv.ParseUint(r.args[0], 0, 16)
			if err != nil {
				return fmt.Errorf("invalid site address %q: %w", r.args[0], rds.ErrInvalidArgument)
			}
			return r.session.AddSiteAddress(ctx, uint16(site))
		},
	},
	"encoder": {
		usage: "ADDRESS  add an encoder address to the encoder",
		args:  1,
		set: func(ctx context.Context, r request) error {
			address, err := parseByte(r.args[0])
			if err != nil {
				return err
			}
			return r.session.AddEncoderAddress(ctx, address)
		},
	},
	"mode": {
		usage: "uni|request|spontaneous  communication mode",
		args:  1,
		set: func(ctx context.Context, r request) error {
			var mode byte
			switch strings.ToLower(r.args[0]) {
			case "uni", "unidirectional":
				mode = uecp.Unidirectional
			case "request":
				mode = uecp.BidirectionalOnRequest
			case "spontaneous":
				mode = uecp.BidirectionalSpontaneous
			default:
				return fmt.Errorf("unknown communication mode %q: %w", r.args[0], rds.ErrInvalidArgument)
			}
			return r.session.SetCommunicationMode(ctx, mode)
		},
	},
	"ops": {
		usage: "  list the operations the protocol supports",
		get: func(ctx context.Context, r request) (fmt.Stringer, error) {
			ops := r.session.Operations()
			names := make([]string, 0, len(ops))
			for _, op := range ops {
				names = append(names, op.String())
			}
			return text(strings.Join(names, "\n")), nil
		},
	},
}

func parameterNames() []string {
	result := make([]string, 0, len(parameters))
	for name := range parameters {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// execute reads or writes the named parameter. The result of a read is written to the request's output.
func execute(ctx context.Context, name string, r request) error {
	p, ok := parameters[name]
	if !ok {
		return fmt.Errorf("unknown parameter %q", name)
	}

	if p.get != nil && len(r.args) == 0 {
		value, err := p.get(ctx, r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.out, value)
		return err
	}
	if p.set == nil {
		return fmt.Errorf("%s cannot be written", name)
	}
	if len(r.args) < p.args {
		return fmt.Errorf("%s needs a value", name)
	}
	return p.set(ctx, r)
}

func parsePI(args []string) (rds.PI, error) {
	code, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 16)
	if err != nil {
		return rds.PI{}, fmt.Errorf("invalid PI code %q: %w", args[0], rds.ErrInvalidArgument)
	}
	if len(args) < 2 {
		return rds.PIFromCode(uint16(code), 0), nil
	}
	ecc, err := parseECC(args[1], byte(code>>12))
	if err != nil {
		return rds.PI{}, err
	}
	return rds.PIFromCode(uint16(code), ecc), nil
}

// parseECC accepts either an ISO 3166 country code or the extended country code in hex. The country must
// use the given country nibble of the PI code.
func parseECC(s string, country byte) (byte, error) {
	candidates := rds.CountryCodesByISO(s)
	if len(candidates) == 0 {
		ecc, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid ECC %q: %w", s, rds.ErrInvalidArgument)
		}
		return byte(ecc), nil
	}
	for _, code := range candidates {
		if code.Country() == country {
			return code.Extended(), nil
		}
	}
	return 0, fmt.Errorf("%s does not use the country code %X: %w", strings.ToUpper(s), country, rds.ErrInvalidArgument)
}

// countryNames lists the countries that use the PI's country code.
func countryNames(pi rds.PI) string {
	var names []string
	for _, country := range pi.Country.Countries() {
		names = append(names, country.Name)
	}
	return strings.Join(names, ", ")
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	result, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%q is neither on nor off: %w", s, rds.ErrInvalidArgument)
	}
	return result, nil
}

func parseByte(s string) (byte, error) {
	result, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, rds.ErrInvalidArgument)
	}
	return byte(result), nil
}

func parseDI(s string) (rds.DI, error) {
	var result rds.DI
	for _, name := range strings.Split(strings.ToLower(s), ",") {
		switch strings.TrimSpace(name) {
		case "mono", "":
		case "stereo":
			result |= rds.DIStereo
		case "artificial-head", "head":
			result |= rds.DIArtificialHead
		case "compressed":
			result |= rds.DICompressed
		default:
			return 0, fmt.Errorf("unknown DI flag %q: %w", name, rds.ErrInvalidArgument)
		}
	}
	return result, nil
}

func parseTATP(s string) (rds.TATP, error) {
	var result rds.TATP
	for _, name := range strings.Split(strings.ToLower(s), ",") {
		switch strings.TrimSpace(name) {
		case "off", "":
		case "ta":
			result |= rds.TA
		case "tp":
			result |= rds.TP
		default:
			return 0, fmt.Errorf("unknown TA/TP flag %q: %w", name, rds.ErrInvalidArgument)
		}
	}
	return result, nil
}

func formatTATP(tatp rds.TATP) string {
	var names []string
	if tatp.Has(rds.TA) {
		names = append(names, "ta")
	}
	if tatp.Has(rds.TP) {
		names = append(names, "tp")
	}
	if len(names) == 0 {
		return "off"
	}
	return strings.Join(names, ",")
}

func parsePTY(s string) (rds.PTY, error) {
	number, err := strconv.ParseUint(s, 10, 8)
	if err == nil {
		return rds.PTY(number), nil
	}
	pty, ok := rds.PTYByName(s)
	if !ok {
		return 0, fmt.Errorf("unknown programme type %q: %w", s, rds.ErrInvalidArgument)
	}
	return pty, nil
}

func parseRTC(s string, now time.Time) (rds.RTC, error) {
	if strings.EqualFold(s, "now") {
		return rds.RTCFromTime(now), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return rds.RTC{}, fmt.Errorf("invalid time %q: %w", s, rds.ErrInvalidArgument)
	}
	return rds.RTCFromTime(t), nil
}
