// services/panel/internal/platform/factories_host.go
//go:build !(rp2040 || rp2350) && !(linux && (arm || arm64))

package platform

import (
	"envpanel-go/drivers/dht22"
	"envpanel-go/drivers/dht22/dht22test"
	"envpanel-go/services/panel/internal/platform/setups"
	"envpanel-go/x/timex"
)

// Host builds run against a simulated DHT22 and an in-memory panel.
func openDevices(plan setups.Plan) (devices, error) {
	sim := dht22test.New(dht22.Reading{Temperature: 23.5, RelativeHumidity: 45.2})
	sim.PinNumber = plan.Sensor

	pins := &FakePinFactory{OnSet: func(n int, level bool) {
		println("[led] gpio", n, level)
	}}
	pins.Put(plan.Sensor, sim)

	return devices{
		pins:  pins,
		panel: NewFakePanel(plan.Display.Width, plan.Display.Height),
		delay: hostDelay{sim: sim},
	}, nil
}

// hostDelay advances the simulated line on every wait and paces millisecond
// waits in real time.
type hostDelay struct{ sim *dht22test.Sensor }

func (d hostDelay) DelayUs(us uint32) { d.sim.DelayUs(us) }

func (d hostDelay) DelayMs(ms uint32) {
	d.sim.DelayMs(ms)
	timex.Delay{}.DelayMs(ms)
}
