package panel

import (
	"errors"
	"testing"

	"envpanel-go/errcode"
)

func TestSelfTestPass(t *testing.T) {
	r := newRig(t)
	res := SelfTest(r.board)
	if !res.Pass() {
		t.Fatalf("self test failed: %+v", res)
	}
	want := []string{
		"gpio 12 false", "gpio 11 false", "gpio 10 false",
		"gpio 12 true", "ms 500", "gpio 12 false", "ms 500",
		"gpio 11 true", "ms 1500", "gpio 11 false", "ms 1500",
		"gpio 10 true", "ms 1000", "gpio 10 false", "ms 1000",
		"ms 1",
	}
	r.expect(t, want...)
	if r.panel.Flushes != 1 || r.panel.Lit(0, 32) == 0 {
		t.Fatal("test frame not shown")
	}
	if res.Reading.Temperature != 23.5 {
		t.Fatalf("reading %+v", res.Reading)
	}
}

func TestSelfTestReportsEachFailure(t *testing.T) {
	r := newRig(t)
	r.sim.Silent = true
	r.panel.FlushErr = errors.New("nack")

	res := SelfTest(r.board)
	if res.Pass() {
		t.Fatal("expected failure")
	}
	if errcode.Of(res.DisplayErr) != errcode.Display {
		t.Fatalf("display err = %v", res.DisplayErr)
	}
	if errcode.Of(res.SensorErr) != errcode.Timeout {
		t.Fatalf("sensor err = %v", res.SensorErr)
	}
}
