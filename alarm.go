package sonar

import "time"

const (
	AlarmPeriod = 800 * time.Millisecond
	AlarmHz     = 1000
	AlarmBurst  = 300 * time.Millisecond
)

// Alarm toggles the buzzer every AlarmPeriod while the monitor stays
// Critical.  It samples the time it is given and never sleeps.
type Alarm struct {
	buzzer  Buzzer
	on      bool
	last    time.Time
	started bool
}

func NewAlarm(buzzer Buzzer) *Alarm {
	return &Alarm{buzzer: buzzer}
}

// Tick advances the alarm phase to now and returns whether the alarm is
// asserted.  The first Tick after Reset opens a fresh window with the alarm
// off.
func (a *Alarm) Tick(now time.Time) bool {
	if !a.started {
		a.started = true
		a.last = now
		return a.on
	}
	if now.Sub(a.last) >= AlarmPeriod {
		a.on = !a.on
		a.last = now
		if a.on {
			a.buzzer.Tone(AlarmHz, AlarmBurst)
		} else {
			a.buzzer.Silence()
		}
	}
	return a.on
}

// Reset forces the alarm off and forgets the last toggle
func (a *Alarm) Reset() {
	a.on = false
	a.last = time.Time{}
	a.started = false
}

func (a *Alarm) On() bool { return a.on }
