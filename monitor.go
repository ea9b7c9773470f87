package sonar

import "time"

const (
	// TickDelay follows a successful measurement
	TickDelay = 200 * time.Millisecond
	// ErrorSettle follows a failed measurement
	ErrorSettle = 500 * time.Millisecond
)

// Logger is the diagnostic text stream.  It is write-only.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Status is what one tick decided
type Status struct {
	State    State
	Distance Distance
	Alarm    bool
	Err      error
}

// Monitor runs the measure, classify, actuate loop
type Monitor struct {
	sensor *Sensor
	alarm  *Alarm
	sink   *Sink
	clock  Clock
	log    Logger
}

func NewMonitor(hal Hal, log Logger) *Monitor {
	return &Monitor{
		sensor: NewSensor(hal, hal),
		alarm:  NewAlarm(hal),
		sink:   NewSink(hal, hal, hal, hal),
		clock:  hal,
		log:    log,
	}
}

// Tick runs one full iteration.  A read failure is shown and logged; the
// next tick is the retry.
func (m *Monitor) Tick() Status {
	cm, err := m.sensor.Measure()
	if err != nil {
		m.alarm.Reset()
		m.sink.ShowError()
		m.log.Warnf("Read error: %v", err)
		m.clock.Sleep(ErrorSettle)
		return Status{State: Error, Err: err}
	}

	status := Status{State: Classify(cm), Distance: cm}

	switch status.State {
	case Critical:
		status.Alarm = m.alarm.Tick(m.clock.Now())
		m.sink.ShowCritical(cm, status.Alarm)
	case Attention:
		m.alarm.Reset()
		m.sink.ShowAttention(cm)
	default:
		m.alarm.Reset()
		m.sink.ShowNormal(cm)
	}

	if status.State == Critical {
		m.log.Infof("Distance: %d cm, state: %s, alarm: %t", cm, status.State, status.Alarm)
	} else {
		m.log.Infof("Distance: %d cm, state: %s", cm, status.State)
	}

	m.clock.Sleep(TickDelay)
	return status
}

// Run ticks forever
func (m *Monitor) Run() {
	m.log.Infof("Sonar monitor starts")
	for {
		m.Tick()
	}
}
