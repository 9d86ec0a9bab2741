package types

// ------------------------
// Temperature & humidity
// ------------------------

// Measurement is one successful sensor reading. It lives for a single loop
// iteration.
type Measurement struct {
	Temperature      float32 // °C
	RelativeHumidity float32 // %RH
}
