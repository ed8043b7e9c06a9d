// rdsctl reads and writes the settings of an RDS encoder on a serial line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ftl/rds-encoder/com"
	"github.com/ftl/rds-encoder/encoder"
	"github.com/ftl/rds-encoder/internal/config"
	"github.com/ftl/rds-encoder/internal/logging"
	"github.com/ftl/rds-encoder/metrics"
	"github.com/ftl/rds-encoder/prais"
	"github.com/ftl/rds-encoder/rds"
	"github.com/ftl/rds-encoder/serial"
	"github.com/ftl/rds-encoder/uecp"
)

// options that only apply to a single invocation
type options struct {
	configFile string
	simulate   bool
	dsn        uint8
	psn        uint8
	rtMethod   string
	rtRetrans  uint8
}

func newFlagSet(o *options) *pflag.FlagSet {
	flags := pflag.NewFlagSet("rdsctl", pflag.ContinueOnError)
	flags.StringVarP(&o.configFile, "config", "c", "", "configuration file (default ./rdsctl.yaml)")
	flags.BoolVar(&o.simulate, "simulate", false, "talk to a simulated encoder instead of the serial port")
	flags.Uint8Var(&o.dsn, "dsn", 0, "data set number")
	flags.Uint8Var(&o.psn, "psn", 0, "programme service number")
	flags.StringVar(&o.rtMethod, "rt-method", "a", "radiotext transmission method, a or b")
	flags.Uint8Var(&o.rtRetrans, "rt-retransmissions", 0, "number of radiotext retransmissions")

	flags.String("serial.port", "", "serial port of the encoder")
	flags.String("serial.detect", "", "find the serial port by a keyword in the device description")
	flags.Uint("serial.baudRate", 9600, "baud rate")
	flags.Duration("serial.timeout", com.DefaultTimeout, "timeout for every byte")
	flags.Bool("serial.trace", false, "trace all bytes on stderr")
	flags.StringP("encoder.protocol", "p", "prais", "protocol: prais (a) or uecp (b)")
	flags.Uint16("encoder.siteAddress", 0, "site address (uecp only)")
	flags.Uint16P("encoder.encoderAddress", "a", 1, "encoder address")
	flags.Bool("encoder.dynamicPS", false, "the encoder rotates several PS names")
	flags.Float64("pacing.framesPerSecond", 0, "maximum frames per second, 0 = unlimited")
	flags.String("logging.level", "info", "log level: debug, info, warn, error")
	flags.String("logging.format", "console", "log format: console or json")
	flags.String("logging.file.filename", "", "additional log file")
	flags.String("metrics.file", "", "write metrics in text format to this file")

	flags.Usage = func() { usage(os.Stderr, flags) }
	return flags
}

func usage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, "usage: rdsctl [flags] PARAMETER [VALUE...]")
	fmt.Fprintln(w, "       rdsctl [flags] decode HEX")
	fmt.Fprintln(w, "       rdsctl [flags] config")
	fmt.Fprintln(w, "\nParameters are read without value and written with value:")
	for _, name := range parameterNames() {
		fmt.Fprintf(w, "  %-10s %s\n", name, parameters[name].usage)
	}
	fmt.Fprintln(w, "\nFlags:")
	fmt.Fprint(w, flags.FlagUsages())
}

func main() {
	var o options
	flags := newFlagSet(&o)
	err := flags.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(o.configFile, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Logging)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = run(ctx, cfg, o, flags.Args(), os.Stdout, logger)
	if err != nil {
		logger.Error("rdsctl failed", zap.Error(err))
		_ = logger.Sync()
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, o options, args []string, out io.Writer, logger *zap.Logger) error {
	protocol, err := encoder.ParseProtocol(cfg.Encoder.Protocol)
	if err != nil {
		return err
	}

	switch args[0] {
	case "config":
		text, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, text)
		return err
	case "decode":
		return decode(protocol, strings.Join(args[1:], ""), out)
	}

	rt, err := radioTextSettings(o)
	if err != nil {
		return err
	}

	var m *metrics.Metrics
	var reg *prometheus.Registry
	if cfg.Metrics.File != "" {
		reg = metrics.NewRegistry()
		m = metrics.New(reg)
	}

	transport, err := openTransport(cfg, protocol, o.simulate, logger)
	if err != nil {
		return err
	}

	sessionOpts := []encoder.Option{
		encoder.WithLogger(logger),
		encoder.WithMetrics(m),
	}
	if cfg.Encoder.DynamicPS {
		sessionOpts = append(sessionOpts, encoder.WithFlags(rds.HardwareDynamicPS))
	}
	if cfg.Pacing.FramesPerSecond > 0 {
		burst := cfg.Pacing.Burst
		if burst < 1 {
			burst = 1
		}
		sessionOpts = append(sessionOpts, encoder.WithPacing(rate.NewLimiter(rate.Limit(cfg.Pacing.FramesPerSecond), burst)))
	}

	session, err := encoder.Open(transport, protocol, cfg.Encoder.SiteAddress, cfg.Encoder.EncoderAddress, sessionOpts...)
	if err != nil {
		return err
	}
	defer session.Close()

	err = execute(ctx, args[0], request{
		session: session,
		channel: rds.Channel{DSN: o.dsn, PSN: o.psn},
		rt:      rt,
		args:    args[1:],
		out:     out,
	})

	if reg != nil {
		if writeErr := prometheus.WriteToTextfile(cfg.Metrics.File, reg); writeErr != nil {
			logger.Warn("cannot write metrics", zap.String("file", cfg.Metrics.File), zap.Error(writeErr))
		}
	}
	return err
}

func radioTextSettings(o options) (rds.RadioText, error) {
	result := rds.RadioText{Retransmissions: o.rtRetrans}
	switch strings.ToLower(o.rtMethod) {
	case "a":
		result.Method = rds.RTMethodA
	case "b":
		result.Method = rds.RTMethodB
	default:
		return rds.RadioText{}, fmt.Errorf("unknown radiotext method %q: %w", o.rtMethod, rds.ErrInvalidArgument)
	}
	return result, nil
}

func openTransport(cfg *config.Config, protocol encoder.Protocol, simulate bool, logger *zap.Logger) (com.Transport, error) {
	if simulate {
		logger.Info("using a simulated encoder", zap.String("protocol", string(protocol)))
		if protocol == encoder.ProtocolA {
			return prais.NewSimulator(cfg.Encoder.EncoderAddress), nil
		}
		return uecp.NewRecorder(logger.Named("recorder")), nil
	}

	portName := cfg.Serial.Port
	if portName == "" && cfg.Serial.Detect != "" {
		var err error
		portName, err = serial.FindEncoderPortName(cfg.Serial.Detect)
		if err != nil {
			return nil, err
		}
		logger.Info("found encoder", zap.String("port", portName))
	}
	if portName == "" {
		return nil, fmt.Errorf("no serial port configured: %w", serial.ErrNoEncoderFound)
	}

	serialConfig := serial.DefaultConfig(portName)
	serialConfig.BaudRate = cfg.Serial.BaudRate
	serialConfig.Timeout = cfg.Serial.Timeout
	if cfg.Serial.Trace {
		return serial.OpenWithTrace(serialConfig, os.Stderr)
	}
	return serial.Open(serialConfig)
}

// decode prints the frame given as hex string.
func decode(protocol encoder.Protocol, hex string, out io.Writer) error {
	wire, err := com.HexToBinary(hex)
	if err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	var frame fmt.Stringer
	switch protocol {
	case encoder.ProtocolA:
		frame, err = prais.DecodeFrame(wire)
	default:
		frame, err = uecp.DecodeFrame(wire)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, frame)
	return err
}
