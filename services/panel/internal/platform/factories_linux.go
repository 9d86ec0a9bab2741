// services/panel/internal/platform/factories_linux.go
//go:build linux && (arm || arm64) && !(rp2040 || rp2350)

package platform

import (
	"image"
	"image/color"
	"strconv"

	"envpanel-go/errcode"
	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/services/panel/internal/platform/setups"
	"envpanel-go/types"
	"envpanel-go/x/timex"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"
)

// Single-board Linux computers: periph drivers for GPIO, I²C and the
// display.
func openDevices(plan setups.Plan) (devices, error) {
	if _, err := host.Init(); err != nil {
		return devices{}, errcode.Wrap(errcode.Error, "platform.host", err)
	}
	bus, err := i2creg.Open(plan.I2C.ID)
	if err != nil {
		return devices{}, errcode.Wrap(errcode.UnknownBus, "platform.i2c", err)
	}
	if plan.I2C.Hz != 0 {
		if err := bus.SetSpeed(physic.Frequency(plan.I2C.Hz) * physic.Hertz); err != nil {
			println("[platform] i2c speed not applied:", err.Error())
		}
	}
	dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{
		W: int(plan.Display.Width),
		H: int(plan.Display.Height),
	})
	if err != nil {
		_ = bus.Close()
		return devices{}, errcode.Wrap(errcode.Display, "platform.ssd1306", err)
	}
	return devices{
		pins:  periphPinFactory{},
		panel: newPeriphPanel(dev),
		delay: timex.Delay{},
	}, nil
}

// ---- Display ----

// periphPanel keeps a 1-bit frame in RAM and draws it in one transfer.
type periphPanel struct {
	dev *ssd1306.Dev
	img *image1bit.VerticalLSB
}

func newPeriphPanel(dev *ssd1306.Dev) *periphPanel {
	return &periphPanel{dev: dev, img: image1bit.NewVerticalLSB(dev.Bounds())}
}

func (p *periphPanel) Size() (int16, int16) {
	b := p.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (p *periphPanel) SetPixel(x, y int16, c color.RGBA) {
	p.img.SetBit(int(x), int(y), image1bit.Bit(c.R|c.G|c.B != 0))
}

func (p *periphPanel) Display() error {
	return p.dev.Draw(p.dev.Bounds(), p.img, image.Point{})
}

func (p *periphPanel) ClearBuffer() {
	for i := range p.img.Pix {
		p.img.Pix[i] = 0
	}
}

// ---- GPIO ----

type periphPinFactory struct{}

func (periphPinFactory) ByNumber(n int) (halcore.GPIOPin, bool) {
	p := gpioreg.ByName("GPIO" + strconv.Itoa(n))
	if p == nil {
		return nil, false
	}
	return &periphPin{p: p, n: n}, true
}

type periphPin struct {
	p gpio.PinIO
	n int
}

func (r *periphPin) ConfigureInput(pull types.Pull) error {
	gp := gpio.Float
	switch pull {
	case types.PullUp:
		gp = gpio.PullUp
	case types.PullDown:
		gp = gpio.PullDown
	}
	return r.p.In(gp, gpio.NoEdge)
}

// Out sets the level and the direction in one call.
func (r *periphPin) ConfigureOutput(initial bool) error { return r.p.Out(gpio.Level(initial)) }

func (r *periphPin) Set(level bool) { _ = r.p.Out(gpio.Level(level)) }
func (r *periphPin) Get() bool      { return bool(r.p.Read()) }
func (r *periphPin) Number() int    { return r.n }
