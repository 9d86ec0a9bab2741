package errcode

import (
	"errors"

	"envpanel-go/drivers/dht22"
)

// Code is a stable, log-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Sensor side.
	PinError         Code = "pin_error"
	Timeout          Code = "timeout"
	ChecksumMismatch Code = "checksum_mismatch"

	// Render side.
	Format  Code = "format"
	Display Code = "display"

	// Bring-up.
	UnknownPin Code = "unknown_pin"
	UnknownBus Code = "unknown_bus"

	Error Code = "error" // generic fallback
)

// E keeps context and a cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	} else if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap returns nil for a nil err, otherwise an *E carrying c.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: c, Op: op, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Error
}

// MapDriverErr maps protocol-client errors to a Code. Errors that already
// carry a Code keep it.
func MapDriverErr(err error) Code {
	if err == nil {
		return OK
	}
	var pe *dht22.PinError
	switch {
	case errors.As(err, &pe):
		return PinError
	case errors.Is(err, dht22.ErrTimeout):
		return Timeout
	case errors.Is(err, dht22.ErrChecksum):
		return ChecksumMismatch
	}
	return Of(err)
}
