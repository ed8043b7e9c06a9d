package rds

import (
	"context"
	"fmt"
)

// Operation identifies one logical operation on an encoder.
type Operation byte

// All defined operations
const (
	GetPI Operation = iota
	SetPI
	GetPS
	SetPS
	GetRT
	SetRT
	GetDI
	SetDI
	GetDynamicPTY
	SetDynamicPTY
	GetTATP
	SetTATP
	GetMusicSpeech
	SetMusicSpeech
	GetPTY
	SetPTY
	GetPTYN
	SetPTYN
	GetCT
	SetCT
	GetRTC
	SetRTC
	GetRDSOn
	SetRDSOn
	Store
	Reset
	SelectDataSet
	EnablePS
	AddSiteAddress
	AddEncoderAddress
	SetCommunicationMode

	operationCount
)

var operationNames = [operationCount]string{
	"get PI", "set PI",
	"get PS", "set PS",
	"get RT", "set RT",
	"get DI", "set DI",
	"get dynamic PTY", "set dynamic PTY",
	"get TA/TP", "set TA/TP",
	"get M/S", "set M/S",
	"get PTY", "set PTY",
	"get PTYN", "set PTYN",
	"get CT", "set CT",
	"get RTC", "set RTC",
	"get RDS on", "set RDS on",
	"store",
	"reset",
	"select data set",
	"enable PS",
	"add site address",
	"add encoder address",
	"set communication mode",
}

func (o Operation) String() string {
	if o >= operationCount {
		return fmt.Sprintf("operation(%d)", byte(o))
	}
	return operationNames[o]
}

// IsGet reports if the operation reads a value from the encoder.
func (o Operation) IsGet() bool {
	switch o {
	case GetPI, GetPS, GetRT, GetDI, GetDynamicPTY, GetTATP, GetMusicSpeech, GetPTY, GetPTYN, GetCT, GetRTC, GetRDSOn:
		return true
	default:
		return false
	}
}

// AllOperations lists every defined operation in order.
func AllOperations() []Operation {
	result := make([]Operation, 0, operationCount)
	for op := Operation(0); op < operationCount; op++ {
		result = append(result, op)
	}
	return result
}

// Operations is a set of operations.
type Operations uint64

func NewOperations(ops ...Operation) Operations {
	var result Operations
	for _, op := range ops {
		result |= 1 << op
	}
	return result
}

func (s Operations) Contains(op Operation) bool {
	return op < operationCount && s&(1<<op) != 0
}

// Handler executes the logical operations with one specific wire protocol.
// Operations that are not contained in the handler's capabilities return ErrUnsupported.
type Handler interface {
	Supports(op Operation) bool

	GetPI(ctx context.Context, ch Channel) (PI, error)
	SetPI(ctx context.Context, ch Channel, pi PI) error
	GetPS(ctx context.Context, ch Channel) (string, error)
	SetPS(ctx context.Context, ch Channel, ps string) error
	GetRT(ctx context.Context, ch Channel) (RadioText, error)
	SetRT(ctx context.Context, ch Channel, rt RadioText) error
	GetDI(ctx context.Context, ch Channel) (DI, error)
	SetDI(ctx context.Context, ch Channel, di DI) error
	GetDynamicPTY(ctx context.Context, ch Channel) (bool, error)
	SetDynamicPTY(ctx context.Context, ch Channel, dynamic bool) error
	GetTATP(ctx context.Context, ch Channel) (TATP, error)
	SetTATP(ctx context.Context, ch Channel, tatp TATP) error
	GetMusicSpeech(ctx context.Context, ch Channel) (MusicSpeech, error)
	SetMusicSpeech(ctx context.Context, ch Channel, ms MusicSpeech) error
	GetPTY(ctx context.Context, ch Channel) (PTY, error)
	SetPTY(ctx context.Context, ch Channel, pty PTY) error
	GetPTYN(ctx context.Context, ch Channel) (string, error)
	SetPTYN(ctx context.Context, ch Channel, ptyn string) error
	GetCT(ctx context.Context) (bool, error)
	SetCT(ctx context.Context, enabled bool) error
	GetRTC(ctx context.Context) (RTC, error)
	SetRTC(ctx context.Context, rtc RTC) error
	GetRDSOn(ctx context.Context) (bool, error)
	SetRDSOn(ctx context.Context, on bool) error

	Store(ctx context.Context) error
	Reset(ctx context.Context) error
	SelectDataSet(ctx context.Context, dsn byte) error
	EnablePS(ctx context.Context, ch Channel, enabled bool) error
	AddSiteAddress(ctx context.Context, site uint16) error
	AddEncoderAddress(ctx context.Context, encoder byte) error
	SetCommunicationMode(ctx context.Context, mode byte) error
}

// Unsupported implements Handler by returning ErrUnsupported for every operation.
// Protocol handlers embed it and override the operations they implement.
type Unsupported struct{}

func unsupported(op Operation) error {
	return fmt.Errorf("%v: %w", op, ErrUnsupported)
}

func (Unsupported) Supports(Operation) bool { return false }

func (Unsupported) GetPI(context.Context, Channel) (PI, error) { return PI{}, unsupported(GetPI) }
func (Unsupported) SetPI(context.Context, Channel, PI) error   { return unsupported(SetPI) }
func (Unsupported) GetPS(context.Context, Channel) (string, error) {
	return "", unsupported(GetPS)
}
func (Unsupported) SetPS(context.Context, Channel, string) error { return unsupported(SetPS) }
func (Unsupported) GetRT(context.Context, Channel) (RadioText, error) {
	return RadioText{}, unsupported(GetRT)
}
func (Unsupported) SetRT(context.Context, Channel, RadioText) error { return unsupported(SetRT) }
func (Unsupported) GetDI(context.Context, Channel) (DI, error)      { return 0, unsupported(GetDI) }
func (Unsupported) SetDI(context.Context, Channel, DI) error        { return unsupported(SetDI) }
func (Unsupported) GetDynamicPTY(context.Context, Channel) (bool, error) {
	return false, unsupported(GetDynamicPTY)
}
func (Unsupported) SetDynamicPTY(context.Context, Channel, bool) error {
	return unsupported(SetDynamicPTY)
}
func (Unsupported) GetTATP(context.Context, Channel) (TATP, error) { return 0, unsupported(GetTATP) }
func (Unsupported) SetTATP(context.Context, Channel, TATP) error   { return unsupported(SetTATP) }
func (Unsupported) GetMusicSpeech(context.Context, Channel) (MusicSpeech, error) {
	return 0, unsupported(GetMusicSpeech)
}
func (Unsupported) SetMusicSpeech(context.Context, Channel, MusicSpeech) error {
	return unsupported(SetMusicSpeech)
}
func (Unsupported) GetPTY(context.Context, Channel) (PTY, error) { return 0, unsupported(GetPTY) }
func (Unsupported) SetPTY(context.Context, Channel, PTY) error   { return unsupported(SetPTY) }
func (Unsupported) GetPTYN(context.Context, Channel) (string, error) {
	return "", unsupported(GetPTYN)
}
func (Unsupported) SetPTYN(context.Context, Channel, string) error { return unsupported(SetPTYN) }
func (Unsupported) GetCT(context.Context) (bool, error)            { return false, unsupported(GetCT) }
func (Unsupported) SetCT(context.Context, bool) error              { return unsupported(SetCT) }
func (Unsupported) GetRTC(context.Context) (RTC, error)            { return RTC{}, unsupported(GetRTC) }
func (Unsupported) SetRTC(context.Context, RTC) error              { return unsupported(SetRTC) }
func (Unsupported) GetRDSOn(context.Context) (bool, error)         { return false, unsupported(GetRDSOn) }
func (Unsupported) SetRDSOn(context.Context, bool) error           { return unsupported(SetRDSOn) }

func (Unsupported) Store(context.Context) error               { return unsupported(Store) }
func (Unsupported) Reset(context.Context) error               { return unsupported(Reset) }
func (Unsupported) SelectDataSet(context.Context, byte) error { return unsupported(SelectDataSet) }
func (Unsupported) EnablePS(context.Context, Channel, bool) error {
	return unsupported(EnablePS)
}
func (Unsupported) AddSiteAddress(context.Context, uint16) error {
	return unsupported(AddSiteAddress)
}
func (Unsupported) AddEncoderAddress(context.Context, byte) error {
	return unsupported(AddEncoderAddress)
}
func (Unsupported) SetCommunicationMode(context.Context, byte) error {
	return unsupported(SetCommunicationMode)
}
