package setups

// Plan specifies the wiring chosen for one board. Pins are GPIO numbers;
// mapping to machine.Pin or a periph pin name happens in the platform.
type Plan struct {
	Name    string
	Sensor  int // DHT22 data line
	LED     LEDPlan
	I2C     I2CPlan
	Display DisplayPlan
	Console UARTPlan
}

type LEDPlan struct {
	Red, Green, Blue int
	ActiveLow        bool // common-anode parts
}

type I2CPlan struct {
	ID  string // e.g. "i2c0"; empty selects the first bus on Linux
	SDA int
	SCL int
	Hz  uint32
}

type DisplayPlan struct {
	Addr          uint16
	Width, Height int16
}

type UARTPlan struct {
	ID   string // "" disables the serial mirror
	TX   int
	RX   int
	Baud uint32
}
