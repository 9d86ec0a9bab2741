//go:build linux && (arm || arm64) && !(rp2040 || rp2350)

package setups

// Raspberry Pi header wiring (BCM numbering). The display sits on the
// default I²C bus; there is no separate serial mirror.
var SelectedPlan = Plan{
	Name:    "rpi_hat",
	Sensor:  4,
	LED:     LEDPlan{Red: 17, Green: 27, Blue: 22},
	I2C:     I2CPlan{Hz: 400_000},
	Display: DisplayPlan{Addr: 0x3C, Width: 128, Height: 64},
}
