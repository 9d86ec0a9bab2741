// services/panel/internal/platform/platform.go
package platform

import (
	"io"

	"envpanel-go/errcode"
	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/services/panel/internal/platform/setups"
)

// Resources is everything the panel takes from the board, opened once at
// boot.
type Resources struct {
	Plan      setups.Plan
	SensorPin halcore.GPIOPin
	LED       halcore.Indicator
	Panel     Panel
	Delay     halcore.TimeProvider
	// Serial mirrors console output; nil when the board has none.
	Serial io.Writer
}

// Open brings up the selected board.
func Open() (Resources, error) {
	return OpenPlan(setups.SelectedPlan)
}

// OpenPlan brings up the board described by plan.
func OpenPlan(plan setups.Plan) (Resources, error) {
	dev, err := openDevices(plan)
	if err != nil {
		return Resources{}, err
	}
	res := Resources{
		Plan:   plan,
		Panel:  dev.panel,
		Delay:  dev.delay,
		Serial: dev.serial,
	}
	var ok bool
	if res.SensorPin, ok = dev.pins.ByNumber(plan.Sensor); !ok {
		return Resources{}, &errcode.E{C: errcode.UnknownPin, Op: "platform.sensor"}
	}
	if res.LED, err = NewIndicator(dev.pins, plan.LED); err != nil {
		return Resources{}, err
	}
	return res, nil
}

// devices is what each platform file opens.
type devices struct {
	pins   halcore.PinFactory
	panel  Panel
	delay  halcore.TimeProvider
	serial io.Writer
}
