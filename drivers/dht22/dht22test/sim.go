// Package dht22test simulates a DHT22 on a virtual-time data line.
//
// A Sensor is both the GPIO pin the host drives and the delay provider the
// host waits on: every Delay call advances the simulated clock, and Get
// reports the line level the real sensor would produce at that instant.
package dht22test

import (
	"envpanel-go/drivers/dht22"
	"envpanel-go/types"
)

// Sensor reacts this long after the host releases the line.
const ResponseLatencyUs = 30

type edge struct {
	at    uint64
	level bool
}

type Sensor struct {
	Reading dht22.Reading
	// Silent never answers a start pulse.
	Silent bool
	// CorruptChecksum sends a frame whose checksum byte is off by one.
	CorruptChecksum bool
	// PinNumber is reported by Number.
	PinNumber int

	// HighDrives counts attempts to actively drive the line high.
	HighDrives int
	// Starts counts start pulses the sensor answered.
	Starts int

	now      uint64 // µs
	output   bool
	latch    bool
	pull     types.Pull
	lowSince uint64
	edges    []edge
}

func New(r dht22.Reading) *Sensor {
	return &Sensor{Reading: r, pull: types.PullUp}
}

// ---- GPIO side ----

func (s *Sensor) ConfigureInput(pull types.Pull) error {
	if s.output && !s.latch && s.now-s.lowSince >= dht22.StartLowMs*1000 && !s.Silent {
		s.schedule()
	}
	s.output = false
	s.pull = pull
	return nil
}

func (s *Sensor) ConfigureOutput(initial bool) error {
	if initial {
		s.HighDrives++
	}
	if !s.output || s.latch != initial {
		s.lowSince = s.now
	}
	s.output = true
	s.latch = initial
	return nil
}

func (s *Sensor) Set(level bool) {
	if s.output && level {
		s.HighDrives++
	}
	if s.output && !level && s.latch {
		s.lowSince = s.now
	}
	s.latch = level
}

func (s *Sensor) Get() bool {
	if s.output {
		return s.latch
	}
	level := s.pull == types.PullUp
	for _, e := range s.edges {
		if e.at > s.now {
			break
		}
		level = e.level
	}
	return level
}

func (s *Sensor) Number() int { return s.PinNumber }

// ---- Delay side ----

func (s *Sensor) DelayUs(us uint32) { s.now += uint64(us) }
func (s *Sensor) DelayMs(ms uint32) { s.now += uint64(ms) * 1000 }

func (s *Sensor) schedule() {
	raw := dht22.Encode(s.Reading)
	if s.CorruptChecksum {
		raw[4]++
	}
	s.Starts++
	s.edges = s.edges[:0]
	t := s.now + ResponseLatencyUs
	add := func(level bool, dur uint64) {
		s.edges = append(s.edges, edge{at: t, level: level})
		t += dur
	}
	add(false, 80)
	add(true, 80)
	for i := 0; i < 40; i++ {
		add(false, 50)
		if raw[i/8]&(1<<(7-uint(i%8))) != 0 {
			add(true, 70)
		} else {
			add(true, 26)
		}
	}
	add(false, 50)
	add(true, 0)
}
