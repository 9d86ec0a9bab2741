// Package dht22 reads a DHT22 (AM2302) temperature/humidity sensor over its
// single-wire protocol:
//
//	r, err := dht22.Read(delay, pin)
//
// The caller owns the line. Pin must behave as an open-drain output: DriveLow
// asserts the line, ReleaseHigh lets the pull-up (or the sensor) set the
// level. All pulse timing is done here through the supplied Delayer; the
// driver never sleeps on its own.
//
// Frame: host holds the line low for at least 1 ms and releases it. The sensor
// answers 80 µs low, 80 µs high, then sends 40 bits. Each bit is 50 µs low
// followed by ~26 µs high (0) or ~70 µs high (1). Bytes are humidity hi/lo,
// temperature hi/lo (bit 15 is the sign) and a checksum of the first four.
package dht22

import "errors"

// Timing (µs unless noted).
const (
	StartLowMs = 1
	// EdgeTimeoutUs bounds every wait for a line transition.
	EdgeTimeoutUs = 100
	// SampleAfterRiseUs separates a 0 (~26 µs high) from a 1 (~70 µs high).
	SampleAfterRiseUs = 35

	frameBits = 40
)

// Errors returned by Read.
var (
	ErrTimeout  = errors.New("dht22: timeout")
	ErrChecksum = errors.New("dht22: checksum mismatch")
)

// PinError reports a failure of the underlying line.
type PinError struct {
	Op  string
	Err error
}

func (e *PinError) Error() string { return "dht22: pin " + e.Op + ": " + e.Err.Error() }
func (e *PinError) Unwrap() error { return e.Err }

// Pin is the open-drain line the sensor is attached to.
type Pin interface {
	ReadLevel() (bool, error)
	DriveLow() error
	ReleaseHigh() error
}

// Delayer blocks for the requested time.
type Delayer interface {
	DelayMs(ms uint32)
	DelayUs(us uint32)
}

// Reading is one decoded measurement.
type Reading struct {
	Temperature      float32 // °C
	RelativeHumidity float32 // %RH
}

// Read performs one full transaction and returns the decoded reading.
func Read(d Delayer, p Pin) (Reading, error) {
	raw, err := ReadRaw(d, p)
	if err != nil {
		return Reading{}, err
	}
	return Decode(raw)
}

// ReadRaw performs one transaction and returns the five frame bytes without
// checksum verification.
func ReadRaw(d Delayer, p Pin) ([5]byte, error) {
	var raw [5]byte

	if err := p.DriveLow(); err != nil {
		return raw, &PinError{Op: "drive_low", Err: err}
	}
	d.DelayMs(StartLowMs)
	if err := p.ReleaseHigh(); err != nil {
		return raw, &PinError{Op: "release", Err: err}
	}

	// Response: low, high, then the first bit's low phase.
	for _, lvl := range [...]bool{false, true, false} {
		if err := waitLevel(d, p, lvl); err != nil {
			return raw, err
		}
	}

	for i := 0; i < frameBits; i++ {
		if err := waitLevel(d, p, true); err != nil {
			return raw, err
		}
		d.DelayUs(SampleAfterRiseUs)
		hi, err := p.ReadLevel()
		if err != nil {
			return raw, &PinError{Op: "read", Err: err}
		}
		if hi {
			raw[i/8] |= 1 << (7 - uint(i%8))
		}
		if err := waitLevel(d, p, false); err != nil {
			return raw, err
		}
	}
	return raw, nil
}

// Decode verifies the checksum and converts a raw frame.
func Decode(raw [5]byte) (Reading, error) {
	sum := raw[0] + raw[1] + raw[2] + raw[3]
	if sum != raw[4] {
		return Reading{}, ErrChecksum
	}
	rh := uint16(raw[0])<<8 | uint16(raw[1])
	t := uint16(raw[2]&0x7F)<<8 | uint16(raw[3])
	r := Reading{
		Temperature:      float32(t) / 10,
		RelativeHumidity: float32(rh) / 10,
	}
	if raw[2]&0x80 != 0 {
		r.Temperature = -r.Temperature
	}
	return r, nil
}

// Encode builds the frame a sensor would send for r, checksum included.
func Encode(r Reading) [5]byte {
	var raw [5]byte
	rh := uint16(r.RelativeHumidity*10 + 0.5)
	t := r.Temperature
	neg := t < 0
	if neg {
		t = -t
	}
	tv := uint16(t*10+0.5) & 0x7FFF
	raw[0], raw[1] = byte(rh>>8), byte(rh)
	raw[2], raw[3] = byte(tv>>8), byte(tv)
	if neg {
		raw[2] |= 0x80
	}
	raw[4] = raw[0] + raw[1] + raw[2] + raw[3]
	return raw
}

func waitLevel(d Delayer, p Pin, want bool) error {
	for us := 0; us <= EdgeTimeoutUs; us++ {
		lvl, err := p.ReadLevel()
		if err != nil {
			return &PinError{Op: "read", Err: err}
		}
		if lvl == want {
			return nil
		}
		d.DelayUs(1)
	}
	return ErrTimeout
}
