package opendrain

import (
	"errors"
	"testing"

	"envpanel-go/errcode"
	"envpanel-go/types"
)

// strictPin fails the test on any attempt to drive the line high.
type strictPin struct {
	t       *testing.T
	out     bool
	level   bool
	pull    types.Pull
	calls   []string
	failCfg error
}

func (p *strictPin) ConfigureInput(pull types.Pull) error {
	p.calls = append(p.calls, "in")
	if p.failCfg != nil {
		return p.failCfg
	}
	p.out, p.pull = false, pull
	return nil
}

func (p *strictPin) ConfigureOutput(initial bool) error {
	p.calls = append(p.calls, "out")
	if initial {
		p.t.Fatalf("ConfigureOutput(true): line driven high")
	}
	if p.failCfg != nil {
		return p.failCfg
	}
	p.out, p.level = true, initial
	return nil
}

func (p *strictPin) Set(level bool) {
	p.calls = append(p.calls, "set")
	if level {
		p.t.Fatalf("Set(true): line driven high")
	}
	p.level = level
}

func (p *strictPin) Get() bool {
	if p.out {
		return p.level
	}
	return p.pull == types.PullUp
}

func (p *strictPin) Number() int { return 15 }

func TestNewStartsReleased(t *testing.T) {
	sp := &strictPin{t: t}
	od, err := New(sp)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if od.Driving() || sp.out || sp.pull != types.PullUp {
		t.Fatalf("line not released: out=%v pull=%v", sp.out, sp.pull)
	}
}

func TestReleaseHighOnlyChangesMode(t *testing.T) {
	sp := &strictPin{t: t}
	od, _ := New(sp)
	sp.calls = nil

	if err := od.DriveLow(); err != nil {
		t.Fatalf("DriveLow: %v", err)
	}
	if err := od.ReleaseHigh(); err != nil {
		t.Fatalf("ReleaseHigh: %v", err)
	}
	if len(sp.calls) != 2 || sp.calls[0] != "out" || sp.calls[1] != "in" {
		t.Fatalf("unexpected pin calls: %v", sp.calls)
	}
	hi, err := od.ReadLevel()
	if err != nil || !hi {
		t.Fatalf("released line: level=%v err=%v, want high via pull-up", hi, err)
	}
}

func TestReadWhileDrivingFails(t *testing.T) {
	sp := &strictPin{t: t}
	od, _ := New(sp)
	_ = od.DriveLow()
	if _, err := od.ReadLevel(); errcode.Of(err) != errcode.PinError {
		t.Fatalf("ReadLevel while driving: err=%v, want pin_error", err)
	}
}

func TestConfigureFailuresArePinErrors(t *testing.T) {
	boom := errors.New("boom")
	sp := &strictPin{t: t}
	od, _ := New(sp)
	sp.failCfg = boom

	for name, err := range map[string]error{
		"drive_low": od.DriveLow(),
		"release":   od.ReleaseHigh(),
	} {
		if errcode.Of(err) != errcode.PinError || !errors.Is(err, boom) {
			t.Fatalf("%s: err=%v", name, err)
		}
	}
	if _, err := New(sp); err == nil {
		t.Fatal("New should surface configure failure")
	}
}
