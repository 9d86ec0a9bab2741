package main

import (
	"time"

	"envpanel-go/services/panel"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	panel.Run()
}
