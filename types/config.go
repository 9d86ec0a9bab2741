package types

// ------------------------
// Loop timing (fixed)
// ------------------------

type Timing struct {
	SettleMs   uint32 // sensor power-on warm-up before the first read
	IntervalMs uint32 // wait after a successful render
	LineStep   int16  // vertical pixels between rendered lines
}

func DefaultTiming() Timing {
	return Timing{
		SettleMs:   2000,
		IntervalMs: 2000,
		LineStep:   16,
	}
}
