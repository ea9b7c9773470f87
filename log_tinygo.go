//go:build tinygo

package sonar

import (
	"fmt"
	"io"
)

type printLogger struct {
	out  io.Writer
	warn bool
}

// NewLogger returns a logger printing to out.  Level "warn" and above drop
// the per-tick Infof lines.
func NewLogger(level string, out io.Writer) (Logger, error) {
	switch level {
	case "warn", "warning", "error":
		return &printLogger{out: out, warn: true}, nil
	}
	return &printLogger{out: out}, nil
}

func (p *printLogger) Infof(format string, args ...any) {
	if !p.warn {
		fmt.Fprintf(p.out, format+"\r\n", args...)
	}
}

func (p *printLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(p.out, "WARN "+format+"\r\n", args...)
}
