// Package rpi runs the monitor on a Linux single board computer, driving
// the sensor, lamps and buzzer through periph.io GPIO.
package rpi

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/merliot/sonar"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Pins names the GPIO lines, in gpioreg.ByName form (BCM numbers on a
// Raspberry Pi, e.g. "GPIO23" or "23").
type Pins struct {
	Trigger string
	Echo    string
	Green   string
	Yellow  string
	Red     string
	Buzzer  string
}

// PinsFromEnv reads pin names from SONAR_* variables, defaulting to a
// common Raspberry Pi wiring
func PinsFromEnv() Pins {
	return Pins{
		Trigger: sonar.GetEnv("SONAR_TRIG", "GPIO23"),
		Echo:    sonar.GetEnv("SONAR_ECHO", "GPIO24"),
		Green:   sonar.GetEnv("SONAR_GREEN", "GPIO17"),
		Yellow:  sonar.GetEnv("SONAR_YELLOW", "GPIO27"),
		Red:     sonar.GetEnv("SONAR_RED", "GPIO22"),
		Buzzer:  sonar.GetEnv("SONAR_BUZZER", "GPIO18"),
	}
}

// Hal implements everything but sonar.Display, which comes from outside
// (the board has no character LCD of its own).
type Hal struct {
	sonar.Display
	clockwork.Clock
	trig   gpio.PinOut
	echo   gpio.PinIn
	leds   [len(sonar.Leds)]gpio.PinOut
	buzzer gpio.PinOut

	mu   sonar.Mutex
	stop clockwork.Timer
}

// Open initializes the host drivers and looks up pins by name
func Open(pins Pins, display sonar.Display) (*Hal, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "host init")
	}
	names := []string{pins.Trigger, pins.Echo, pins.Green, pins.Yellow, pins.Red, pins.Buzzer}
	resolved := make([]gpio.PinIO, len(names))
	for i, name := range names {
		if resolved[i] = gpioreg.ByName(name); resolved[i] == nil {
			return nil, errors.Errorf("no GPIO pin named: %s", name)
		}
	}
	return New(resolved[0], resolved[1],
		[len(sonar.Leds)]gpio.PinOut{resolved[2], resolved[3], resolved[4]}, resolved[5],
		display, clockwork.NewRealClock())
}

// New wires already resolved pins.  All outputs start low.
func New(trig gpio.PinOut, echo gpio.PinIn, leds [len(sonar.Leds)]gpio.PinOut,
	buzzer gpio.PinOut, display sonar.Display, clock clockwork.Clock) (*Hal, error) {

	h := &Hal{
		Display: display,
		Clock:   clock,
		trig:    trig,
		echo:    echo,
		leds:    leds,
		buzzer:  buzzer,
	}
	outs := append([]gpio.PinOut{trig, buzzer}, leds[:]...)
	for _, out := range outs {
		if err := out.Out(gpio.Low); err != nil {
			return nil, errors.Wrapf(err, "pin %s", out)
		}
	}
	if err := echo.In(gpio.PullDown, gpio.BothEdges); err != nil {
		return nil, errors.Wrapf(err, "pin %s", echo)
	}
	return h, nil
}

func (h *Hal) Trigger(high bool) {
	if high {
		// drop edges left over from the last measurement
		h.echo.In(gpio.PullDown, gpio.BothEdges)
	}
	h.trig.Out(gpio.Level(high))
}

// Echo waits for the rising then the falling edge, both within timeout
func (h *Hal) Echo(timeout time.Duration) time.Duration {
	begin := h.Now()
	if !h.echo.WaitForEdge(timeout) {
		return 0
	}
	start := h.Now()
	left := timeout - start.Sub(begin)
	if left <= 0 || !h.echo.WaitForEdge(left) {
		return 0
	}
	return h.Since(start)
}

func (h *Hal) Set(led sonar.Led, on bool) {
	h.leds[led].Out(gpio.Level(on))
}

// Tone drives a square wave on the buzzer pin for d, then pulls it low
func (h *Hal) Tone(hz uint32, d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopLocked()
	if err := h.buzzer.PWM(gpio.DutyHalf, physic.Frequency(hz)*physic.Hertz); err != nil {
		// no hardware PWM on this line, hold it high instead
		h.buzzer.Out(gpio.High)
	}
	h.stop = h.AfterFunc(d, func() {
		h.mu.Lock()
		h.buzzer.Out(gpio.Low)
		h.mu.Unlock()
	})
}

func (h *Hal) Silence() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopLocked()
	h.buzzer.Out(gpio.Low)
}

func (h *Hal) stopLocked() {
	if h.stop != nil {
		h.stop.Stop()
		h.stop = nil
	}
}

var _ sonar.Hal = (*Hal)(nil)
