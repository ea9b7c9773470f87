package sonar

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSinkStates(t *testing.T) {
	tests := []struct {
		name   string
		show   func(*Sink)
		lit    []Led
		top    string
		bottom string
	}{
		{"normal", func(s *Sink) { s.ShowNormal(220) }, []Led{Green}, "Dist: 220 cm", "ESTADO: NORMAL"},
		{"attention", func(s *Sink) { s.ShowAttention(137) }, []Led{Yellow}, "Dist: 137 cm", "ESTADO: ATENCAO"},
		{"critical", func(s *Sink) { s.ShowCritical(68, false) }, []Led{Red}, "Dist: 68 cm", "ESTADO: CRITICO"},
		{"error", func(s *Sink) { s.ShowError() }, nil, "Erro de leitura", "Verificar sensor"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			hal := newFakeHal()
			// Start from a dirty board: every lamp on and a tone running
			hal.leds = [len(Leds)]bool{true, true, true}
			hal.Tone(AlarmHz, AlarmBurst)

			sink := NewSink(hal, hal, hal, hal)
			test.show(sink)
			c.Assert(hal.lit(), qt.DeepEquals, test.lit)
			c.Assert(hal.lines, qt.DeepEquals, [DisplayRows]string{test.top, test.bottom})
			c.Assert(hal.sounding(), qt.IsFalse)

			// Showing the same thing again changes nothing
			hal.multiLit = false
			test.show(sink)
			c.Assert(hal.multiLit, qt.IsFalse)
			c.Assert(hal.lit(), qt.DeepEquals, test.lit)
			c.Assert(hal.lines, qt.DeepEquals, [DisplayRows]string{test.top, test.bottom})
		})
	}
}

func TestSinkErrorBlinks(t *testing.T) {
	c := qt.New(t)
	hal := newFakeHal()
	start := hal.now
	NewSink(hal, hal, hal, hal).ShowError()
	// cleared, then one on/off cycle
	c.Assert(hal.redSets, qt.DeepEquals, []bool{false, true, false})
	c.Assert(hal.now.Sub(start), qt.Equals, 2*blinkHalf)
}

func TestSinkCriticalKeepsBurst(t *testing.T) {
	c := qt.New(t)
	hal := newFakeHal()
	sink := NewSink(hal, hal, hal, hal)

	hal.Tone(AlarmHz, AlarmBurst)
	sink.ShowCritical(50, true)
	c.Assert(hal.sounding(), qt.IsTrue)
	c.Assert(hal.lit(), qt.DeepEquals, []Led{Red})

	sink.ShowCritical(50, false)
	c.Assert(hal.sounding(), qt.IsFalse)
	c.Assert(hal.lit(), qt.DeepEquals, []Led{Red})
}

func TestFit(t *testing.T) {
	c := qt.New(t)
	c.Assert(fit("Verificar sensor"), qt.Equals, "Verificar sensor")
	c.Assert(fit("0123456789abcdefXYZ"), qt.Equals, "0123456789abcdef")
}
