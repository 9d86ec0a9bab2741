package types

// ------------------------
// Faults & indicator
// ------------------------

// Channel selects one output of the tri-color indicator.
type Channel uint8

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue

	NumChannels = 3
)

func (c Channel) String() string {
	switch c {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// FaultKind classifies a failed loop iteration. Each kind owns one indicator
// channel and one blink interval.
type FaultKind uint8

const (
	FaultSensor FaultKind = iota
	FaultFormat
	FaultDisplay
)

// Interval is the blink half-period in milliseconds.
func (k FaultKind) Interval() uint32 {
	switch k {
	case FaultFormat:
		return 1500
	case FaultDisplay:
		return 1000
	default:
		return 500
	}
}

func (k FaultKind) Channel() Channel {
	switch k {
	case FaultFormat:
		return ChannelGreen
	case FaultDisplay:
		return ChannelBlue
	default:
		return ChannelRed
	}
}

func (k FaultKind) String() string {
	switch k {
	case FaultSensor:
		return "sensor"
	case FaultFormat:
		return "format"
	case FaultDisplay:
		return "display"
	default:
		return "unknown"
	}
}
