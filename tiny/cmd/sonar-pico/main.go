//go:build tinygo

package main

import (
	"machine"

	"github.com/merliot/sonar"
	"github.com/merliot/sonar/tiny"
)

// Raspberry Pi Pico wiring
var pins = tiny.Pins{
	Trigger: machine.GP2,
	Echo:    machine.GP3,
	Green:   machine.GP10,
	Yellow:  machine.GP11,
	Red:     machine.GP12,
	Buzzer:  machine.GP18,
}

// set to true for a 128x32 SSD1306 in place of the 16x2 LCD
const oled = false

func main() {
	log, err := sonar.NewLogger("info", machine.Serial)
	if err != nil {
		println("Logger:", err.Error())
		return
	}

	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400 * machine.KHz,
	})

	var display sonar.Display
	if oled {
		display = tiny.NewOled(machine.I2C0)
	} else {
		lcd, err := tiny.NewLcd(machine.I2C0, 0x27)
		if err != nil {
			println("LCD:", err.Error())
			return
		}
		display = lcd
	}

	// GP18 is PWM slice 1, channel A
	hal, err := tiny.New(pins, machine.PWM1, display)
	if err != nil {
		println("Buzzer:", err.Error())
		return
	}

	sonar.NewMonitor(hal, log).Run()
}
