//go:build tinygo

// Package tiny runs the monitor on a TinyGo microcontroller
package tiny

import (
	"machine"
	"time"

	"github.com/merliot/sonar"
	"tinygo.org/x/drivers/tone"
)

type Pins struct {
	Trigger machine.Pin
	Echo    machine.Pin
	Green   machine.Pin
	Yellow  machine.Pin
	Red     machine.Pin
	Buzzer  machine.Pin
}

// Hal implements sonar.Hal with GPIO, a PWM speaker and a character
// display
type Hal struct {
	sonar.Display
	trig    machine.Pin
	echo    machine.Pin
	leds    [len(sonar.Leds)]machine.Pin
	speaker tone.Speaker
	stop    *time.Timer
}

// New configures the pins.  pwm must be the PWM slice driving pins.Buzzer.
func New(pins Pins, pwm tone.PWM, display sonar.Display) (*Hal, error) {
	speaker, err := tone.New(pwm, pins.Buzzer)
	if err != nil {
		return nil, err
	}
	h := &Hal{
		Display: display,
		trig:    pins.Trigger,
		echo:    pins.Echo,
		leds:    [len(sonar.Leds)]machine.Pin{pins.Green, pins.Yellow, pins.Red},
		speaker: speaker,
	}
	h.trig.Configure(machine.PinConfig{Mode: machine.PinOutput})
	h.trig.Low()
	h.echo.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	for _, led := range h.leds {
		led.Configure(machine.PinConfig{Mode: machine.PinOutput})
		led.Low()
	}
	speaker.Stop()
	return h, nil
}

func (h *Hal) Trigger(high bool) {
	h.trig.Set(high)
}

// Echo busy-waits on the echo pin; there is nothing else to do meanwhile
func (h *Hal) Echo(timeout time.Duration) time.Duration {
	deadline := time.Now().Add(timeout)
	for !h.echo.Get() {
		if time.Now().After(deadline) {
			return 0
		}
	}
	start := time.Now()
	for h.echo.Get() {
		if time.Now().After(deadline) {
			return 0
		}
	}
	return time.Since(start)
}

func (h *Hal) Set(led sonar.Led, on bool) {
	h.leds[led].Set(on)
}

func (h *Hal) Tone(hz uint32, d time.Duration) {
	h.speaker.SetPeriod(uint64(1e9) / uint64(hz))
	if h.stop == nil {
		h.stop = time.AfterFunc(d, h.speaker.Stop)
	} else {
		h.stop.Reset(d)
	}
}

func (h *Hal) Silence() {
	if h.stop != nil {
		h.stop.Stop()
	}
	h.speaker.Stop()
}

func (h *Hal) Now() time.Time {
	return time.Now()
}

func (h *Hal) Sleep(d time.Duration) {
	time.Sleep(d)
}
