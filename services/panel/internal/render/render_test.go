package render

import (
	"errors"
	"math"
	"strings"
	"testing"

	"envpanel-go/errcode"
	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/services/panel/internal/linebuf"
	"envpanel-go/types"
)

type drawn struct {
	x, y     int16
	text     string
	baseline halcore.Baseline
}

type fakeSurface struct {
	cleared  int
	flushed  int
	draws    []drawn
	drawErr  error
	flushErr error
}

func (s *fakeSurface) Clear() { s.cleared++; s.draws = nil }
func (s *fakeSurface) DrawText(x, y int16, text string, st halcore.TextStyle) error {
	if s.drawErr != nil {
		return s.drawErr
	}
	s.draws = append(s.draws, drawn{x, y, text, st.Baseline})
	return nil
}
func (s *fakeSurface) Flush() error {
	if s.flushErr != nil {
		return s.flushErr
	}
	s.flushed++
	return nil
}

func TestRenderMeasurement(t *testing.T) {
	s := &fakeSurface{}
	r := New(s, &linebuf.Buffer{}, 16)
	lines := MeasurementLines(types.Measurement{Temperature: 23.5, RelativeHumidity: 45.2})
	style := halcore.TextStyle{Baseline: halcore.BaselineAlphabetic}

	if err := r.Render(lines[:], style); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := []drawn{
		{0, 0, "Temp: 23.5", halcore.BaselineTop},
		{0, 16, "Humid: 45.2", halcore.BaselineTop},
	}
	if len(s.draws) != len(want) {
		t.Fatalf("draws = %+v", s.draws)
	}
	for i := range want {
		if s.draws[i] != want[i] {
			t.Fatalf("line %d = %+v, want %+v", i, s.draws[i], want[i])
		}
	}
	if s.cleared != 1 || s.flushed != 1 {
		t.Fatalf("cleared=%d flushed=%d", s.cleared, s.flushed)
	}
}

func TestRenderFormatsShortestFloat(t *testing.T) {
	cases := map[float32]string{
		20:    "T: 20",
		-7.3:  "T: -7.3",
		99.9:  "T: 99.9",
		0.125: "T: 0.125",
	}
	for v, want := range cases {
		s := &fakeSurface{}
		if err := New(s, &linebuf.Buffer{}, 16).Render([]Line{{"T", v}}, halcore.TextStyle{}); err != nil {
			t.Fatalf("Render(%v): %v", v, err)
		}
		if s.draws[0].text != want {
			t.Fatalf("Render(%v) = %q, want %q", v, s.draws[0].text, want)
		}
	}
}

func TestRenderLongLineIsTruncated(t *testing.T) {
	s := &fakeSurface{}
	label := strings.Repeat("L", 80)
	if err := New(s, &linebuf.Buffer{}, 16).Render([]Line{{label, 1}}, halcore.TextStyle{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := s.draws[0].text; got != label[:linebuf.Capacity] {
		t.Fatalf("text len %d, want %d", len(got), linebuf.Capacity)
	}
}

func TestRenderFaults(t *testing.T) {
	nack := errors.New("i2c nack")
	cases := []struct {
		name  string
		surf  *fakeSurface
		lines []Line
		want  errcode.Code
	}{
		{"flush", &fakeSurface{flushErr: nack}, []Line{{"Temp", 1}}, errcode.Display},
		{"draw", &fakeSurface{drawErr: nack}, []Line{{"Temp", 1}}, errcode.Display},
		{"nan", &fakeSurface{}, []Line{{"Temp", float32(math.NaN())}}, errcode.Format},
		{"split rune", &fakeSurface{}, []Line{{strings.Repeat("a", 63) + "°", 1}}, errcode.Format},
	}
	for _, c := range cases {
		err := New(c.surf, &linebuf.Buffer{}, 16).Render(c.lines, halcore.TextStyle{})
		if errcode.Of(err) != c.want {
			t.Fatalf("%s: err = %v, want %s", c.name, err, c.want)
		}
		if c.surf.flushed != 0 {
			t.Fatalf("%s: frame flushed despite failure", c.name)
		}
	}
}
