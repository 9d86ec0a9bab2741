// services/panel/internal/halcore/types.go
package halcore

import (
	"image/color"

	"envpanel-go/types"

	"tinygo.org/x/tinyfont"
)

// ---- Timing ----

// TimeProvider is the only time source of the loop: blocking waits.
type TimeProvider interface {
	DelayMs(ms uint32)
	DelayUs(us uint32)
}

// ---- GPIO abstractions ----

type DigitalInput interface {
	Get() bool
}

type DigitalOutput interface {
	Set(level bool)
}

// GPIOPin is a pin whose direction can change at run time.
type GPIOPin interface {
	DigitalInput
	DigitalOutput
	ConfigureInput(pull types.Pull) error
	// ConfigureOutput must latch initial before enabling the output driver.
	ConfigureOutput(initial bool) error
	Number() int
}

// PinFactory supplies GPIO pins by the configured number scheme.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// Indicator holds the tri-color LED outputs indexed by types.Channel.
type Indicator [types.NumChannels]DigitalOutput

// ---- Sensor ----

// OpenDrain is the line handed to the single-wire protocol client.
type OpenDrain interface {
	ReadLevel() (bool, error)
	DriveLow() error
	ReleaseHigh() error
}

// Sensor is the single-wire protocol client. Pulse timing is its concern.
type Sensor interface {
	Read(d TimeProvider, line OpenDrain) (types.Measurement, error)
}

// ---- Display ----

type Baseline uint8

const (
	BaselineTop Baseline = iota
	BaselineAlphabetic
)

type TextStyle struct {
	Font  tinyfont.Fonter
	Color color.RGBA
	// Ascent is the distance in pixels from the top of a line to its
	// alphabetic baseline.
	Ascent   int16
	Baseline Baseline
}

// DisplaySurface is a frame buffer plus the transport that pushes it.
type DisplaySurface interface {
	Clear()
	DrawText(x, y int16, text string, style TextStyle) error
	Flush() error
}
