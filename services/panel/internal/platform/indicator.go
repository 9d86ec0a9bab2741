package platform

import (
	"envpanel-go/errcode"
	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/services/panel/internal/platform/setups"
	"envpanel-go/types"
)

// ledOut maps a logical on/off onto a pin, honouring active-low wiring.
type ledOut struct {
	pin       halcore.GPIOPin
	activeLow bool
}

func (o ledOut) Set(on bool) { o.pin.Set(on != o.activeLow) }

// NewIndicator claims the three LED pins as outputs, all off.
func NewIndicator(pins halcore.PinFactory, p setups.LEDPlan) (halcore.Indicator, error) {
	var ind halcore.Indicator
	nums := [types.NumChannels]int{
		types.ChannelRed:   p.Red,
		types.ChannelGreen: p.Green,
		types.ChannelBlue:  p.Blue,
	}
	for ch, n := range nums {
		pin, ok := pins.ByNumber(n)
		if !ok {
			return ind, &errcode.E{C: errcode.UnknownPin, Op: "platform.led", Msg: types.Channel(ch).String()}
		}
		if err := pin.ConfigureOutput(p.ActiveLow); err != nil {
			return ind, errcode.Wrap(errcode.PinError, "platform.led", err)
		}
		ind[ch] = ledOut{pin: pin, activeLow: p.ActiveLow}
	}
	return ind, nil
}
