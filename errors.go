package sonar

import "github.com/pkg/errors"

var (
	// ErrSensorRead is the only failure a measurement reports.  Timeouts
	// and implausible distances both wrap it.
	ErrSensorRead = errors.New("sensor read failure")

	ErrNoEcho     = errors.Wrap(ErrSensorRead, "no echo")
	ErrOutOfRange = errors.Wrap(ErrSensorRead, "distance out of range")
)
