package panel

import (
	"envpanel-go/drivers/dht22"
	"envpanel-go/errcode"
	"envpanel-go/services/panel/internal/halcore"
	"envpanel-go/types"
)

// DHT22 is the single-wire protocol client for the board's sensor.
type DHT22 struct{}

func (DHT22) Read(d halcore.TimeProvider, line halcore.OpenDrain) (types.Measurement, error) {
	r, err := dht22.Read(d, line)
	if err != nil {
		return types.Measurement{}, err
	}
	return types.Measurement{Temperature: r.Temperature, RelativeHumidity: r.RelativeHumidity}, nil
}

// acquire runs one sensor transaction on the board's line. Failures come
// back as *errcode.E carrying a sensor-side code.
func acquire(b *Board) (types.Measurement, error) {
	m, err := b.Sensor.Read(b.Delay, b.Line)
	if err != nil {
		return types.Measurement{}, &errcode.E{C: sensorCode(err), Op: "acquire", Err: err}
	}
	return m, nil
}

// sensorCode keeps pin, timeout and checksum codes; anything else a sensor
// reports becomes the generic code.
func sensorCode(err error) errcode.Code {
	switch c := errcode.MapDriverErr(err); c {
	case errcode.PinError, errcode.Timeout, errcode.ChecksumMismatch:
		return c
	default:
		return errcode.Error
	}
}
