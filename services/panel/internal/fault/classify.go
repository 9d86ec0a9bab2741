package fault

import (
	"envpanel-go/errcode"
	"envpanel-go/types"
)

// Classify maps any loop error to a fault kind. Render failures carry the
// format or display code; everything else came from the sensor path.
func Classify(err error) types.FaultKind {
	switch errcode.MapDriverErr(err) {
	case errcode.Format:
		return types.FaultFormat
	case errcode.Display:
		return types.FaultDisplay
	default:
		return types.FaultSensor
	}
}

// SubCode is the numeric fault code printed in logs.
func SubCode(err error) uint8 {
	switch errcode.MapDriverErr(err) {
	case errcode.PinError:
		return 1
	case errcode.Timeout:
		return 2
	case errcode.ChecksumMismatch:
		return 3
	case errcode.Format:
		return 4
	case errcode.Display:
		return 5
	default:
		return 0
	}
}
