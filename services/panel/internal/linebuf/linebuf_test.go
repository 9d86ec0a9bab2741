package linebuf

import (
	"strings"
	"testing"

	"envpanel-go/errcode"
)

func TestWriteTruncatesSilently(t *testing.T) {
	var b Buffer
	in := strings.Repeat("x", 100)
	n, err := b.Write([]byte(in))
	if err != nil || n != 100 {
		t.Fatalf("Write = %d, %v; want 100, nil", n, err)
	}
	v, err := b.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(v) != Capacity || v != in[:Capacity] {
		t.Fatalf("view len %d, want first %d bytes", len(v), Capacity)
	}
}

func TestCursorNeverExceedsCapacity(t *testing.T) {
	var b Buffer
	chunks := []string{"Temp: ", "23.5", strings.Repeat("a", 50), "bc", "", "defgh"}
	for i := 0; i < 5; i++ {
		for _, c := range chunks {
			_, _ = b.WriteString(c)
			_ = b.WriteByte('!')
			if b.Len() > b.Cap() {
				t.Fatalf("cursor %d beyond capacity", b.Len())
			}
		}
	}
	if b.Len() != Capacity {
		t.Fatalf("cursor = %d, want %d", b.Len(), Capacity)
	}
}

func TestResetIsLogical(t *testing.T) {
	var b Buffer
	_, _ = b.WriteString("Humid: 45.2")
	b.Reset()
	if v, err := b.View(); err != nil || v != "" {
		t.Fatalf("after Reset view = %q, %v", v, err)
	}
	// Memory is left in place; only the cursor moved.
	if b.buf[0] != 'H' {
		t.Fatalf("Reset cleared memory")
	}
	_, _ = b.WriteString("T")
	if v, _ := b.View(); v != "T" {
		t.Fatalf("view = %q, want %q", v, "T")
	}
}

func TestViewRejectsSplitRune(t *testing.T) {
	var b Buffer
	_, _ = b.WriteString(strings.Repeat("a", Capacity-1) + "°")
	if _, err := b.View(); errcode.Of(err) != errcode.Format {
		t.Fatalf("split rune: err = %v, want format", err)
	}
}
