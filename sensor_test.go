package sonar

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name string
		echo time.Duration
		want Distance
		err  error
	}{
		{"critical", us(4000), 68, nil},
		{"attention", us(8000), 137, nil},
		{"lowest", us(117), 2, nil},
		{"highest", us(23324), 400, nil},
		{"no echo", 0, 0, ErrNoEcho},
		{"past timeout", EchoTimeout + time.Microsecond, 0, ErrNoEcho},
		{"too close", us(116), 0, ErrOutOfRange},
		{"too far", us(23385), 0, ErrOutOfRange},
		{"450 cm", us(26240), 0, ErrOutOfRange},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			hal := newFakeHal(test.echo)
			cm, err := NewSensor(hal, hal).Measure()
			if test.err != nil {
				c.Assert(errors.Is(err, test.err), qt.IsTrue, qt.Commentf("err %v", err))
				c.Assert(errors.Is(err, ErrSensorRead), qt.IsTrue)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(cm, qt.Equals, test.want)
		})
	}
}

func TestMeasureTriggerPulse(t *testing.T) {
	c := qt.New(t)
	hal := newFakeHal(us(4000))
	start := hal.now
	NewSensor(hal, hal).Measure()
	c.Assert(hal.triggers, qt.DeepEquals, []bool{false, true, false})
	c.Assert(hal.now.Sub(start), qt.Equals, settleTime+triggerWidth+us(4000))
}

func TestMeasureTimeoutBlocksForTimeout(t *testing.T) {
	c := qt.New(t)
	hal := newFakeHal()
	start := hal.now
	_, err := NewSensor(hal, hal).Measure()
	c.Assert(errors.Is(err, ErrNoEcho), qt.IsTrue)
	c.Assert(hal.now.Sub(start), qt.Equals, settleTime+triggerWidth+EchoTimeout)
}

func TestEchoToDistance(t *testing.T) {
	c := qt.New(t)
	c.Assert(EchoToDistance(us(4000)), qt.Equals, Distance(68))
	c.Assert(EchoToDistance(us(8000)), qt.Equals, Distance(137))
	c.Assert(EchoToDistance(us(20000)), qt.Equals, Distance(343))
	c.Assert(EchoToDistance(EchoTimeout), qt.Equals, Distance(514))
}

func TestPropertyMeasure(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	props := gopter.NewProperties(params)

	props.Property("conversion never decreases", prop.ForAll(
		func(n int) bool {
			return EchoToDistance(us(n)) <= EchoToDistance(us(n+1))
		},
		gen.IntRange(0, 30000),
	))

	props.Property("reading is in range or a read failure", prop.ForAll(
		func(n int) bool {
			hal := newFakeHal(us(n))
			cm, err := NewSensor(hal, hal).Measure()
			if err != nil {
				return errors.Is(err, ErrSensorRead) && cm == 0
			}
			return cm >= MinDistance && cm <= MaxDistance
		},
		gen.IntRange(0, 40000),
	))

	props.TestingRun(t)
}
