// services/panel/internal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"io"
	"machine"

	"envpanel-go/errcode"
	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/services/panel/internal/platform/setups"
	"envpanel-go/types"
	"envpanel-go/x/timex"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ssd1306"
)

func openDevices(plan setups.Plan) (devices, error) {
	bus, err := openI2C(plan.I2C)
	if err != nil {
		return devices{}, err
	}
	// Small delay for bus stabilisation.
	timex.Delay{}.DelayMs(10)

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address: plan.Display.Addr,
		Width:   plan.Display.Width,
		Height:  plan.Display.Height,
	})
	dev.ClearDisplay()

	return devices{
		pins:   rp2PinFactory{},
		panel:  dev,
		delay:  timex.Delay{},
		serial: openSerial(plan.Console),
	}, nil
}

// ---- I²C ----

func openI2C(p setups.I2CPlan) (*machine.I2C, error) {
	var bus *machine.I2C
	switch p.ID {
	case "i2c0":
		bus = machine.I2C0
	case "i2c1":
		bus = machine.I2C1
	default:
		return nil, &errcode.E{C: errcode.UnknownBus, Op: "platform.i2c", Msg: p.ID}
	}
	if err := bus.Configure(machine.I2CConfig{
		Frequency: p.Hz,
		SDA:       machine.Pin(p.SDA),
		SCL:       machine.Pin(p.SCL),
	}); err != nil {
		return nil, errcode.Wrap(errcode.UnknownBus, "platform.i2c", err)
	}
	return bus, nil
}

// ---- Serial console mirror ----

func openSerial(p setups.UARTPlan) io.Writer {
	var hw *uartx.UART
	switch p.ID {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil
	}
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: p.Baud,
		TX:       machine.Pin(p.TX),
		RX:       machine.Pin(p.RX),
	}); err != nil {
		println("[platform] uart configure failed:", err.Error())
		return nil
	}
	return hw
}

// ---- GPIO ----

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (halcore.GPIOPin, bool) {
	// Constrain to RP2's user GPIOs (GP0..GP28).
	if n < 0 || n > 28 {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull types.Pull) error {
	var mode machine.PinMode
	switch pull {
	case types.PullUp:
		mode = machine.PinInputPullup
	case types.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

// ConfigureOutput latches the level first so enabling the driver never
// glitches to the previous latch value.
func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Set(initial)
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Number() int    { return r.n }
