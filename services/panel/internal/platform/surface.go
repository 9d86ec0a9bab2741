package platform

import (
	"envpanel-go/errcode"
	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/x/mathx"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Panel is a buffered display: pixels are set in RAM and pushed by Display.
type Panel interface {
	drivers.Displayer
	ClearBuffer()
}

// FrameSurface draws text onto a Panel with tinyfont.
type FrameSurface struct {
	p Panel
}

func NewFrameSurface(p Panel) *FrameSurface { return &FrameSurface{p: p} }

func (s *FrameSurface) Clear() { s.p.ClearBuffer() }

func (s *FrameSurface) DrawText(x, y int16, text string, st halcore.TextStyle) error {
	if st.Font == nil {
		return &errcode.E{C: errcode.Display, Op: "surface.draw", Msg: "no font"}
	}
	w, h := s.p.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return &errcode.E{C: errcode.Display, Op: "surface.draw", Msg: "origin off screen"}
	}
	base := y
	if st.Baseline == halcore.BaselineTop {
		base = mathx.Clamp(y+st.Ascent, 0, h-1)
	}
	tinyfont.WriteLine(s.p, st.Font, x, base, text, st.Color)
	return nil
}

func (s *FrameSurface) Flush() error { return s.p.Display() }
