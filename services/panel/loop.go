package panel

import (
	"envpanel-go/services/panel/internal/console"
	"envpanel-go/services/panel/internal/fault"
	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/services/panel/internal/opendrain"
	"envpanel-go/services/panel/internal/render"
	"envpanel-go/types"
)

type State uint8

const (
	StateSampling State = iota
	StateRendering
	StateSignaling
)

func (s State) String() string {
	switch s {
	case StateSampling:
		return "sampling"
	case StateRendering:
		return "rendering"
	case StateSignaling:
		return "signaling"
	default:
		return "unknown"
	}
}

// Board is everything the loop drives. It is built once at boot.
type Board struct {
	Line     *opendrain.Pin
	Sensor   halcore.Sensor
	Renderer *render.Renderer
	Signaler *fault.Signaler
	Delay    halcore.TimeProvider
	Log      *console.Console
	Style    halcore.TextStyle
	Timing   types.Timing
}

// Loop is the sample/render/signal state machine. One goroutine only.
type Loop struct {
	b     *Board
	state State

	last    types.Measurement
	pending types.FaultKind
	faulted bool

	Samples uint32
	Faults  uint32
}

func NewLoop(b *Board) *Loop {
	return &Loop{b: b, state: StateSampling}
}

func (l *Loop) State() State { return l.state }

// Last returns the most recent good measurement.
func (l *Loop) Last() types.Measurement { return l.last }

// Boot turns the indicator off and waits for the sensor to settle.
func (l *Loop) Boot() {
	l.b.Signaler.AllOff()
	l.b.Log.Printf("settling %d ms, sensor on gpio %d", l.b.Timing.SettleMs, l.b.Line.Number())
	l.b.Delay.DelayMs(l.b.Timing.SettleMs)
	l.state = StateSampling
}

// Step performs the current state's action and returns the next state.
func (l *Loop) Step() State {
	switch l.state {
	case StateSampling:
		m, err := acquire(l.b)
		if err != nil {
			l.fail(err)
			break
		}
		l.last = m
		l.Samples++
		l.state = StateRendering

	case StateRendering:
		lines := render.MeasurementLines(l.last)
		if err := l.b.Renderer.Render(lines[:], l.b.Style); err != nil {
			l.fail(err)
			break
		}
		if l.faulted {
			l.b.Log.Println("recovered")
			l.faulted = false
		}
		l.b.Delay.DelayMs(l.b.Timing.IntervalMs)
		l.state = StateSampling

	case StateSignaling:
		l.b.Signaler.Signal(l.pending)
		l.state = StateSampling

	default:
		l.state = StateSampling
	}
	return l.state
}

// Run boots and steps forever.
func (l *Loop) Run() {
	l.Boot()
	for {
		l.Step()
	}
}

func (l *Loop) fail(err error) {
	k := fault.Classify(err)
	l.pending = k
	l.faulted = true
	l.Faults++
	l.b.Log.Printf("%s fault %d: %v", k, fault.SubCode(err), err)
	l.state = StateSignaling
}
