// Package console prints tagged log lines ("[panel] ...") on the default
// print sink and mirrors them to an optional serial writer.
package console

import (
	"fmt"
	"io"
)

type Console struct {
	tag string
	w   io.Writer
}

// New returns a console; w may be nil.
func New(tag string, w io.Writer) *Console {
	return &Console{tag: tag, w: w}
}

func (c *Console) Println(a ...any) {
	c.emit(fmt.Sprintln(a...))
}

func (c *Console) Printf(format string, a ...any) {
	c.emit(fmt.Sprintf(format, a...))
}

func (c *Console) emit(msg string) {
	line := "[" + c.tag + "] " + msg
	if n := len(line); n == 0 || line[n-1] != '\n' {
		line += "\n"
	}
	print(line)
	if c.w != nil {
		_, _ = c.w.Write([]byte(line))
	}
}
