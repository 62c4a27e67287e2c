package main

import (
	"fmt"
	"io"
)

// consoleReporter renders engine status and progress on the terminal.
type consoleReporter struct {
	out io.Writer
}

func (c *consoleReporter) Status(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(c.out, msg)
}

func (c *consoleReporter) Progress(current, total int) {
	fmt.Fprintf(c.out, "[%d/%d]\n", current, total)
}
