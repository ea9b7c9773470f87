package sonar

import "time"

// Led identifies one of the three indicator lamps
type Led uint8

const (
	Green Led = iota
	Yellow
	Red
)

// Leds lists every indicator, in the order they are cleared
var Leds = [...]Led{Green, Yellow, Red}

func (l Led) String() string {
	switch l {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	}
	return "unknown"
}

// Ranger drives the ultrasonic module: a trigger output and an echo input.
type Ranger interface {
	// Trigger sets the trigger pin level
	Trigger(high bool)
	// Echo waits for the echo pulse and returns its width, or 0 if no
	// complete pulse arrived within timeout.
	Echo(timeout time.Duration) time.Duration
}

// Indicators drives the tri-color indicator lamps
type Indicators interface {
	Set(led Led, on bool)
}

// Buzzer drives the audible alarm
type Buzzer interface {
	// Tone starts a square wave of hz that stops by itself after d
	Tone(hz uint32, d time.Duration)
	// Silence stops any tone now
	Silence()
}

// Display is a character display addressed by (column, row)
type Display interface {
	Clear()
	Print(col, row uint8, text string)
}

// Clock is the time source.  Sleep blocks the caller.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Hal is everything the monitor needs from a board
type Hal interface {
	Ranger
	Indicators
	Buzzer
	Display
	Clock
}
