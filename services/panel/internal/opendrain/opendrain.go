// Package opendrain turns a bidirectional GPIO into an open-drain line.
//
// The line is either driven low (output, latch low) or released (input with
// pull-up). It is never driven high: the pull-up supplies the high level so
// that the peer can pull the line low at any time without contention.
package opendrain

import (
	"envpanel-go/errcode"
	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/types"
)

type Pin struct {
	pin     halcore.GPIOPin
	driving bool
}

// New wraps p and leaves the line released.
func New(p halcore.GPIOPin) (*Pin, error) {
	od := &Pin{pin: p, driving: true}
	if err := od.ReleaseHigh(); err != nil {
		return nil, err
	}
	return od, nil
}

// DriveLow switches the pin to output with a low latch.
func (p *Pin) DriveLow() error {
	if err := p.pin.ConfigureOutput(false); err != nil {
		return errcode.Wrap(errcode.PinError, "opendrain.drive_low", err)
	}
	p.driving = true
	return nil
}

// ReleaseHigh switches the pin to pulled-up input. No level is written.
func (p *Pin) ReleaseHigh() error {
	if err := p.pin.ConfigureInput(types.PullUp); err != nil {
		return errcode.Wrap(errcode.PinError, "opendrain.release", err)
	}
	p.driving = false
	return nil
}

// ReadLevel samples the line. It fails while the line is driven.
func (p *Pin) ReadLevel() (bool, error) {
	if p.driving {
		return false, &errcode.E{C: errcode.PinError, Op: "opendrain.read", Msg: "line is driven"}
	}
	return p.pin.Get(), nil
}

func (p *Pin) Driving() bool { return p.driving }
func (p *Pin) Number() int   { return p.pin.Number() }
