package sonar

import (
	"strings"
	"time"
)

// fakeHal is a simulated board.  Echo widths are consumed one per
// measurement and time only moves when something sleeps or waits.
type fakeHal struct {
	now       time.Time
	echoes    []time.Duration
	triggers  []bool
	leds      [len(Leds)]bool
	redSets   []bool
	multiLit  bool
	toneUntil time.Time
	tones     int
	toneHz    uint32
	toneFor   time.Duration
	silences  int
	lines     [DisplayRows]string
}

func newFakeHal(echoes ...time.Duration) *fakeHal {
	return &fakeHal{
		now:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		echoes: echoes,
	}
}

func us(n int) time.Duration {
	return time.Duration(n) * time.Microsecond
}

func (f *fakeHal) Trigger(high bool) {
	f.triggers = append(f.triggers, high)
}

func (f *fakeHal) Echo(timeout time.Duration) time.Duration {
	if len(f.echoes) == 0 {
		f.now = f.now.Add(timeout)
		return 0
	}
	width := f.echoes[0]
	f.echoes = f.echoes[1:]
	if width <= 0 || width > timeout {
		f.now = f.now.Add(timeout)
		return 0
	}
	f.now = f.now.Add(width)
	return width
}

func (f *fakeHal) Set(led Led, on bool) {
	f.leds[led] = on
	if led == Red {
		f.redSets = append(f.redSets, on)
	}
	if len(f.lit()) > 1 {
		f.multiLit = true
	}
}

func (f *fakeHal) lit() []Led {
	var lit []Led
	for _, led := range Leds {
		if f.leds[led] {
			lit = append(lit, led)
		}
	}
	return lit
}

func (f *fakeHal) Tone(hz uint32, d time.Duration) {
	f.toneUntil = f.now.Add(d)
	f.toneHz, f.toneFor = hz, d
	f.tones++
}

func (f *fakeHal) Silence() {
	f.toneUntil = time.Time{}
	f.silences++
}

func (f *fakeHal) sounding() bool {
	return f.now.Before(f.toneUntil)
}

func (f *fakeHal) Clear() {
	f.lines = [DisplayRows]string{}
}

func (f *fakeHal) Print(col, row uint8, text string) {
	line := f.lines[row]
	if len(line) < int(col) {
		line += strings.Repeat(" ", int(col)-len(line))
	}
	f.lines[row] = line[:col] + text
}

func (f *fakeHal) Now() time.Time {
	return f.now
}

func (f *fakeHal) Sleep(d time.Duration) {
	f.now = f.now.Add(d)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any) {}
func (nopLogger) Warnf(string, ...any) {}
