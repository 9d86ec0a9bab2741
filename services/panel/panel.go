// Package panel samples the DHT22, shows the reading on the OLED and blinks
// the fault LED when something in that chain fails.
package panel

import (
	"envpanel-go/services/panel/internal/console"
	"envpanel-go/services/panel/internal/fault"
	"envpanel-go/services/panel/internal/linebuf"
	"envpanel-go/services/panel/internal/opendrain"
	"envpanel-go/services/panel/internal/platform"
	"envpanel-go/services/panel/internal/render"
	"envpanel-go/types"
	"envpanel-go/x/timex"
)

// NewBoard wires opened platform resources into a Board.
func NewBoard(res platform.Resources, log *console.Console) (*Board, error) {
	line, err := opendrain.New(res.SensorPin)
	if err != nil {
		return nil, err
	}
	timing := types.DefaultTiming()
	surface := platform.NewFrameSurface(res.Panel)
	return &Board{
		Line:     line,
		Sensor:   DHT22{},
		Renderer: render.New(surface, &linebuf.Buffer{}, timing.LineStep),
		Signaler: fault.NewSignaler(res.LED, res.Delay),
		Delay:    res.Delay,
		Log:      log,
		Style:    DefaultStyle(),
		Timing:   timing,
	}, nil
}

// OpenBoard brings up the selected board. Log lines carry tag.
func OpenBoard(tag string) (*Board, error) {
	res, err := platform.Open()
	if err != nil {
		return nil, err
	}
	log := console.New(tag, res.Serial)
	b, err := NewBoard(res, log)
	if err != nil {
		return nil, err
	}
	log.Printf("board %s up", res.Plan.Name)
	return b, nil
}

// Run brings up the board and runs the loop. It never returns.
func Run() {
	b, err := OpenBoard("panel")
	if err == nil {
		NewLoop(b).Run()
	}
	log := console.New("panel", nil)
	for {
		log.Println("bring-up failed:", err)
		timex.Delay{}.DelayMs(5000)
	}
}
