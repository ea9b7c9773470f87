// Package sim is a board that exists only in memory.  Echo widths come
// from a script, time is simulated, and the lamps, buzzer and display
// land on a panel.
package sim

import (
	"strconv"
	"time"

	"github.com/google/shlex"
	"github.com/merliot/sonar"
	"github.com/merliot/sonar/panel"
	"github.com/pkg/errors"
)

// DefaultScript walks through every tier, a lost echo and an implausible
// one: 220cm, 137cm, 68cm x5, no echo, 450cm.
const DefaultScript = "12828 8000 4000 4000 4000 4000 4000 timeout 26240"

// ParseScript splits a script of echo widths in microseconds.  "timeout"
// or 0 stands for no echo.  Tokens may be quoted or commented shell style.
func ParseScript(script string) ([]time.Duration, error) {
	words, err := shlex.Split(script)
	if err != nil {
		return nil, errors.Wrap(err, "split script")
	}
	if len(words) == 0 {
		return nil, errors.New("empty script")
	}
	widths := make([]time.Duration, 0, len(words))
	for _, word := range words {
		if word == "timeout" {
			widths = append(widths, 0)
			continue
		}
		us, err := strconv.ParseUint(word, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "echo width %q", word)
		}
		widths = append(widths, time.Duration(us)*time.Microsecond)
	}
	return widths, nil
}

// Hal implements sonar.Hal.  The script repeats forever.
type Hal struct {
	*panel.Panel
	script    []time.Duration
	next      int
	armed     bool
	now       time.Time
	toneUntil time.Time
	realtime  bool
}

// New returns a simulated board starting at start.  With realtime set,
// Sleep also sleeps the wall clock so the panel can be watched.
func New(p *panel.Panel, script []time.Duration, start time.Time, realtime bool) *Hal {
	return &Hal{
		Panel:    p,
		script:   script,
		now:      start,
		realtime: realtime,
	}
}

func (h *Hal) Trigger(high bool) {
	if high {
		h.armed = true
	}
}

// Echo plays the next scripted width.  Without a trigger pulse there is
// never an echo.
func (h *Hal) Echo(timeout time.Duration) time.Duration {
	if !h.armed || len(h.script) == 0 {
		h.Sleep(timeout)
		return 0
	}
	h.armed = false
	width := h.script[h.next%len(h.script)]
	h.next++
	if width <= 0 || width > timeout {
		h.Sleep(timeout)
		return 0
	}
	h.Sleep(width)
	return width
}

func (h *Hal) Tone(hz uint32, d time.Duration) {
	h.toneUntil = h.now.Add(d)
	h.SetBuzzer(true)
}

func (h *Hal) Silence() {
	h.toneUntil = time.Time{}
	h.SetBuzzer(false)
}

// Sounding reports whether a tone burst is still running
func (h *Hal) Sounding() bool {
	return h.now.Before(h.toneUntil)
}

func (h *Hal) Now() time.Time {
	return h.now
}

func (h *Hal) Sleep(d time.Duration) {
	h.now = h.now.Add(d)
	if h.realtime {
		time.Sleep(d)
	}
	h.SetBuzzer(h.Sounding())
}

var _ sonar.Hal = (*Hal)(nil)
