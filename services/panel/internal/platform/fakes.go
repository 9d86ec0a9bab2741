package platform

import (
	"image/color"

	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/types"
)

// ----------------------------- GPIO (fake) -----------------------------------

// FakePin implements halcore.GPIOPin for host builds and tests.
type FakePin struct {
	number  int
	level   bool
	modeOut bool
	pull    types.Pull
	// OnSet, when set, observes every level written while in output mode.
	OnSet func(n int, level bool)
}

func (p *FakePin) ConfigureInput(pull types.Pull) error {
	p.modeOut = false
	p.pull = pull
	return nil
}

// ConfigureOutput latches initial before switching to output mode.
func (p *FakePin) ConfigureOutput(initial bool) error {
	p.level = initial
	p.modeOut = true
	if p.OnSet != nil {
		p.OnSet(p.number, initial)
	}
	return nil
}

func (p *FakePin) Set(level bool) {
	p.level = level
	if p.modeOut && p.OnSet != nil {
		p.OnSet(p.number, level)
	}
}

func (p *FakePin) Get() bool {
	if !p.modeOut {
		return p.pull == types.PullUp
	}
	return p.level
}

func (p *FakePin) Number() int    { return p.number }
func (p *FakePin) IsOutput() bool { return p.modeOut }
func (p *FakePin) Level() bool    { return p.level }

// FakePinFactory returns stable *FakePin instances per number. Other pins,
// such as a simulated sensor line, can be installed with Put.
type FakePinFactory struct {
	pins  map[int]*FakePin
	extra map[int]halcore.GPIOPin
	// OnSet is copied into every FakePin the factory creates.
	OnSet func(n int, level bool)
}

func (f *FakePinFactory) ByNumber(n int) (halcore.GPIOPin, bool) {
	if n < 0 {
		return nil, false
	}
	if p, ok := f.extra[n]; ok {
		return p, true
	}
	return f.Pin(n), true
}

// Put installs p under number n.
func (f *FakePinFactory) Put(n int, p halcore.GPIOPin) {
	if f.extra == nil {
		f.extra = make(map[int]halcore.GPIOPin)
	}
	f.extra[n] = p
}

// Pin returns the fake for n, creating it on first use.
func (f *FakePinFactory) Pin(n int) *FakePin {
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n, OnSet: f.OnSet}
		f.pins[n] = p
	}
	return p
}

// ----------------------------- Display (fake) --------------------------------

// FakePanel is an in-memory monochrome frame buffer.
type FakePanel struct {
	w, h    int16
	buf     []bool
	shown   []bool
	Flushes int
	// FlushErr is returned by Display when non-nil.
	FlushErr error
}

func NewFakePanel(w, h int16) *FakePanel {
	return &FakePanel{w: w, h: h, buf: make([]bool, int(w)*int(h)), shown: make([]bool, int(w)*int(h))}
}

func (p *FakePanel) Size() (int16, int16) { return p.w, p.h }

func (p *FakePanel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	p.buf[int(y)*int(p.w)+int(x)] = c.R|c.G|c.B != 0
}

func (p *FakePanel) Display() error {
	if p.FlushErr != nil {
		return p.FlushErr
	}
	copy(p.shown, p.buf)
	p.Flushes++
	return nil
}

func (p *FakePanel) ClearBuffer() {
	for i := range p.buf {
		p.buf[i] = false
	}
}

// Lit counts pixels set in the band of rows [y0, y1) of the last flushed
// frame.
func (p *FakePanel) Lit(y0, y1 int16) int {
	n := 0
	for y := y0; y < y1 && y < p.h; y++ {
		for x := int16(0); x < p.w; x++ {
			if p.shown[int(y)*int(p.w)+int(x)] {
				n++
			}
		}
	}
	return n
}
