// Package linebuf stages one formatted display line in a fixed array.
//
// Writes never fail and never allocate: bytes beyond the capacity are
// dropped. Reset only rewinds the cursor.
package linebuf

import (
	"unicode/utf8"

	"envpanel-go/errcode"
	"envpanel-go/x/mathx"
)

const Capacity = 64

type Buffer struct {
	buf [Capacity]byte
	n   int
}

// Write copies as much of p as fits and always reports len(p), nil.
func (b *Buffer) Write(p []byte) (int, error) {
	k := copy(b.buf[b.n:], p)
	b.n += k
	return len(p), nil
}

func (b *Buffer) WriteString(s string) (int, error) {
	k := mathx.Min(len(s), Capacity-b.n)
	copy(b.buf[b.n:], s[:k])
	b.n += k
	return len(s), nil
}

func (b *Buffer) WriteByte(c byte) error {
	if b.n < Capacity {
		b.buf[b.n] = c
		b.n++
	}
	return nil
}

func (b *Buffer) Reset()  { b.n = 0 }
func (b *Buffer) Len() int { return b.n }
func (b *Buffer) Cap() int { return Capacity }

// View returns the staged text. Truncation can split a multi-byte rune, in
// which case the view is rejected.
func (b *Buffer) View() (string, error) {
	p := b.buf[:b.n]
	if !utf8.Valid(p) {
		return "", &errcode.E{C: errcode.Format, Op: "linebuf.view", Msg: "invalid utf-8"}
	}
	return string(p), nil
}
