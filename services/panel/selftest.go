package panel

import (
	"envpanel-go/services/panel/internal/fault"
	"envpanel-go/services/panel/internal/render"
	"envpanel-go/types"
)

// SelfTestResult is the outcome of one bring-up check.
type SelfTestResult struct {
	Reading    types.Measurement
	SensorErr  error
	DisplayErr error
}

func (r SelfTestResult) Pass() bool { return r.SensorErr == nil && r.DisplayErr == nil }

// SelfTest blinks every indicator channel through its fault pattern, draws a
// test frame and takes one reading.
func SelfTest(b *Board) SelfTestResult {
	var res SelfTestResult

	b.Signaler.AllOff()
	for _, k := range []types.FaultKind{types.FaultSensor, types.FaultFormat, types.FaultDisplay} {
		b.Log.Printf("led %s: %s pattern", k.Channel(), k)
		b.Signaler.Signal(k)
	}

	frame := []render.Line{
		{Label: "Test", Value: 8.8},
		{Label: "GPIO", Value: float32(b.Line.Number())},
	}
	if res.DisplayErr = b.Renderer.Render(frame, b.Style); res.DisplayErr != nil {
		b.Log.Printf("display: fault %d: %v", fault.SubCode(res.DisplayErr), res.DisplayErr)
	} else {
		b.Log.Println("display: ok")
	}

	res.Reading, res.SensorErr = acquire(b)
	if res.SensorErr != nil {
		b.Log.Printf("sensor: fault %d: %v", fault.SubCode(res.SensorErr), res.SensorErr)
	} else {
		b.Log.Printf("sensor: %.1f C %.1f %%RH", res.Reading.Temperature, res.Reading.RelativeHumidity)
	}
	return res
}
