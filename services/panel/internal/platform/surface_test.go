package platform

import (
	"errors"
	"image/color"
	"testing"

	"envpanel-go/services/panel/internal/halcore"

	"tinygo.org/x/tinyfont/freemono"
)

var white = color.RGBA{255, 255, 255, 255}

func testStyle() halcore.TextStyle {
	return halcore.TextStyle{Font: &freemono.Bold9pt7b, Color: white, Ascent: 12}
}

func TestFrameSurfaceDrawsTopAligned(t *testing.T) {
	p := NewFakePanel(128, 64)
	s := NewFrameSurface(p)

	s.Clear()
	if err := s.DrawText(0, 0, "Temp: 23.5", testStyle()); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if p.Flushes != 1 {
		t.Fatalf("flushes = %d", p.Flushes)
	}
	if p.Lit(0, 16) == 0 {
		t.Fatal("nothing drawn in the first text row")
	}
	if p.Lit(40, 64) != 0 {
		t.Fatal("pixels drawn below the first rows")
	}

	s.Clear()
	_ = s.Flush()
	if p.Lit(0, 64) != 0 {
		t.Fatal("Clear left pixels behind")
	}
}

func TestFrameSurfaceErrors(t *testing.T) {
	p := NewFakePanel(128, 64)
	s := NewFrameSurface(p)

	if err := s.DrawText(0, 64, "x", testStyle()); err == nil {
		t.Fatal("expected error for origin below the panel")
	}
	if err := s.DrawText(0, 0, "x", halcore.TextStyle{}); err == nil {
		t.Fatal("expected error without a font")
	}
	nack := errors.New("nack")
	p.FlushErr = nack
	if err := s.Flush(); !errors.Is(err, nack) {
		t.Fatalf("Flush err = %v, want %v", err, nack)
	}
}
