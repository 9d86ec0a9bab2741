package fault

import (
	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/types"
)

// Signaler blinks the indicator channel owned by a fault kind.
type Signaler struct {
	led   halcore.Indicator
	delay halcore.TimeProvider
}

func NewSignaler(led halcore.Indicator, d halcore.TimeProvider) *Signaler {
	return &Signaler{led: led, delay: d}
}

// Signal runs one full on/off cycle and returns.
func (s *Signaler) Signal(k types.FaultKind) {
	out := s.led[k.Channel()]
	ms := k.Interval()
	out.Set(true)
	s.delay.DelayMs(ms)
	out.Set(false)
	s.delay.DelayMs(ms)
}

// AllOff drives every channel low.
func (s *Signaler) AllOff() {
	for _, out := range s.led {
		out.Set(false)
	}
}
