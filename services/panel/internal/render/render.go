// Package render draws labelled readings into the display frame buffer and
// flushes it.
package render

import (
	"math"
	"strconv"

	"envpanel-go/errcode"
	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/services/panel/internal/linebuf"
	"envpanel-go/types"
)

// Line is one "label: value" row.
type Line struct {
	Label string
	Value float32
}

// MeasurementLines returns the two rows shown for a reading.
func MeasurementLines(m types.Measurement) [2]Line {
	return [2]Line{
		{Label: "Temp", Value: m.Temperature},
		{Label: "Humid", Value: m.RelativeHumidity},
	}
}

type Renderer struct {
	surface halcore.DisplaySurface
	buf     *linebuf.Buffer
	step    int16
}

// New returns a renderer that stacks lines lineStep pixels apart.
func New(s halcore.DisplaySurface, buf *linebuf.Buffer, lineStep int16) *Renderer {
	return &Renderer{surface: s, buf: buf, step: lineStep}
}

// Render clears the frame, draws each line top-aligned at x=0 and flushes.
// Errors carry errcode.Format or errcode.Display.
func (r *Renderer) Render(lines []Line, style halcore.TextStyle) error {
	r.surface.Clear()
	style.Baseline = halcore.BaselineTop
	for i, ln := range lines {
		r.buf.Reset()
		if err := formatLine(r.buf, ln); err != nil {
			return err
		}
		text, err := r.buf.View()
		if err != nil {
			return err
		}
		if err := r.surface.DrawText(0, int16(i)*r.step, text, style); err != nil {
			return errcode.Wrap(errcode.Display, "render.draw", err)
		}
		r.buf.Reset()
	}
	if err := r.surface.Flush(); err != nil {
		return errcode.Wrap(errcode.Display, "render.flush", err)
	}
	return nil
}

func formatLine(b *linebuf.Buffer, ln Line) error {
	v := float64(ln.Value)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &errcode.E{C: errcode.Format, Op: "render.format", Msg: ln.Label + " is not finite"}
	}
	var num [24]byte
	_, _ = b.WriteString(ln.Label)
	_, _ = b.WriteString(": ")
	_, _ = b.Write(strconv.AppendFloat(num[:0], v, 'f', -1, 32))
	return nil
}
