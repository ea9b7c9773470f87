package sonar

import (
	"strconv"
	"time"
)

// Character display geometry
const (
	DisplayCols = 16
	DisplayRows = 2
)

const (
	blinkHalf   = 250 * time.Millisecond
	errorBlinks = 1
)

const (
	textNormal    = "ESTADO: NORMAL"
	textAttention = "ESTADO: ATENCAO"
	textCritical  = "ESTADO: CRITICO"
	textReadErr   = "Erro de leitura"
	textCheck     = "Verificar sensor"
)

// Sink presents one hazard state on the indicators, buzzer and display.
// Every Show call clears all lamps first, so at most one lamp is lit once
// it returns.
type Sink struct {
	leds    Indicators
	buzzer  Buzzer
	display Display
	clock   Clock
}

func NewSink(leds Indicators, buzzer Buzzer, display Display, clock Clock) *Sink {
	return &Sink{leds: leds, buzzer: buzzer, display: display, clock: clock}
}

func (s *Sink) clear() {
	for _, led := range Leds {
		s.leds.Set(led, false)
	}
}

func (s *Sink) present(top, bottom string) {
	s.display.Clear()
	s.display.Print(0, 0, fit(top))
	s.display.Print(0, 1, fit(bottom))
}

func fit(text string) string {
	if len(text) > DisplayCols {
		return text[:DisplayCols]
	}
	return text
}

func distanceLine(d Distance) string {
	return "Dist: " + strconv.Itoa(int(d)) + " cm"
}

func (s *Sink) ShowNormal(d Distance) {
	s.clear()
	s.buzzer.Silence()
	s.leds.Set(Green, true)
	s.present(distanceLine(d), textNormal)
}

func (s *Sink) ShowAttention(d Distance) {
	s.clear()
	s.buzzer.Silence()
	s.leds.Set(Yellow, true)
	s.present(distanceLine(d), textAttention)
}

// ShowCritical lights the steady red lamp.  The tone burst itself is
// started by the Alarm when it toggles on; here the buzzer is only
// silenced while the alarm is off.
func (s *Sink) ShowCritical(d Distance, alarm bool) {
	s.clear()
	if !alarm {
		s.buzzer.Silence()
	}
	s.leds.Set(Red, true)
	s.present(distanceLine(d), textCritical)
}

// ShowError blinks the red lamp synchronously and leaves every lamp off
func (s *Sink) ShowError() {
	s.clear()
	s.buzzer.Silence()
	s.present(textReadErr, textCheck)
	for i := 0; i < errorBlinks; i++ {
		s.leds.Set(Red, true)
		s.clock.Sleep(blinkHalf)
		s.leds.Set(Red, false)
		s.clock.Sleep(blinkHalf)
	}
}
