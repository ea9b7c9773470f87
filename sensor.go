package sonar

import (
	"time"

	"github.com/pkg/errors"
)

// Distance in centimeters
type Distance int

const (
	MinDistance Distance = 2
	MaxDistance Distance = 400

	// EchoTimeout bounds the wait for an echo, about 500cm round trip
	EchoTimeout = 30000 * time.Microsecond

	settleTime   = 2 * time.Microsecond
	triggerWidth = 10 * time.Microsecond
)

// Sensor is an HC-SR04 style ultrasonic rangefinder
type Sensor struct {
	ranger Ranger
	clock  Clock
}

func NewSensor(ranger Ranger, clock Clock) *Sensor {
	return &Sensor{ranger: ranger, clock: clock}
}

// Measure fires one trigger pulse and converts the echo into a distance.
// Any failure wraps ErrSensorRead; there are no retries here.
func (s *Sensor) Measure() (Distance, error) {
	s.ranger.Trigger(false)
	s.clock.Sleep(settleTime)
	s.ranger.Trigger(true)
	s.clock.Sleep(triggerWidth)
	s.ranger.Trigger(false)

	echo := s.ranger.Echo(EchoTimeout)
	if echo <= 0 || echo > EchoTimeout {
		return 0, errors.Wrapf(ErrNoEcho, "timeout %s", EchoTimeout)
	}

	cm := EchoToDistance(echo)
	if cm < MinDistance || cm > MaxDistance {
		return 0, errors.Wrapf(ErrOutOfRange, "%d cm", cm)
	}
	return cm, nil
}

// EchoToDistance converts an echo pulse width to centimeters, truncated.
// Sound travels 0.0343 cm/us and the pulse covers the round trip, so
// cm = us * 0.0343 / 2 = us * 343 / 20000.
func EchoToDistance(echo time.Duration) Distance {
	return Distance(echo.Microseconds() * 343 / 20000)
}
