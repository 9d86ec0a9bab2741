package timex

import "time"

// Delay is a blocking delay provider. Microsecond waits spin on the
// monotonic clock; millisecond waits sleep.
type Delay struct{}

func (Delay) DelayMs(ms uint32) { time.Sleep(time.Duration(ms) * time.Millisecond) }

func (Delay) DelayUs(us uint32) {
	d := time.Duration(us) * time.Microsecond
	start := time.Now()
	for time.Since(start) < d {
	}
}
