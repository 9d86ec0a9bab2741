//go:build !(linux && (arm || arm64)) || rp2040 || rp2350

package setups

// WLAN temperature board (Pico): DHT22 on GP15, SSD1306 on i2c0,
// RGB LED on GP12/GP11/GP10.
var SelectedPlan = Plan{
	Name:    "wlan_temp_board",
	Sensor:  15,
	LED:     LEDPlan{Red: 12, Green: 11, Blue: 10},
	I2C:     I2CPlan{ID: "i2c0", SDA: 16, SCL: 17, Hz: 400_000},
	Display: DisplayPlan{Addr: 0x3C, Width: 128, Height: 64},
	Console: UARTPlan{ID: "uart1", TX: 4, RX: 5, Baud: 115_200},
}
