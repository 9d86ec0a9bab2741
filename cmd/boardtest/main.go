// cmd/boardtest/main.go
package main

import (
	"time"

	"envpanel-go/services/panel"
)

// ---------- Configuration ----------

const (
	dwell = 3 * time.Second

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

// ---------- Main ----------

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	b, err := panel.OpenBoard("boardtest")
	if err != nil {
		println("[boardtest] bring-up failed:", err.Error())
		return
	}

	cycle := 0
	for {
		cycle++
		b.Log.Println("=== cycle", cycle, "===")

		res := panel.SelfTest(b)
		if res.Pass() {
			b.Log.Println("[PASS] indicator, display and sensor responded")
		} else {
			b.Log.Printf("[FAIL] display=%v sensor=%v", res.DisplayErr, res.SensorErr)
		}

		if cyclesToRun > 0 && cycle >= cyclesToRun {
			b.Log.Println("completed", cycle, "cycles; halting")
			return
		}
		time.Sleep(dwell)
	}
}
