//go:build !tinygo

package sonar

import (
	sync "github.com/sasha-s/go-deadlock"
)

// Mutex guards board state shared between the monitor loop and another
// goroutine, such as a panel redraw or a buzzer stop timer
type Mutex struct {
	sync.Mutex
}
