//go:build tinygo

package tiny

import (
	"github.com/merliot/sonar"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Lcd is a 16x2 HD44780 behind a PCF8574 I2C backpack
type Lcd struct {
	dev hd44780i2c.Device
}

// NewLcd configures the display at addr (0 means the usual 0x27).  The
// I2C bus must already be configured.
func NewLcd(bus drivers.I2C, addr uint8) (*Lcd, error) {
	l := &Lcd{dev: hd44780i2c.New(bus, addr)}
	err := l.dev.Configure(hd44780i2c.Config{
		Width:  sonar.DisplayCols,
		Height: sonar.DisplayRows,
	})
	if err != nil {
		return nil, err
	}
	l.dev.BacklightOn(true)
	return l, nil
}

func (l *Lcd) Clear() {
	l.dev.ClearDisplay()
}

func (l *Lcd) Print(col, row uint8, text string) {
	l.dev.SetCursor(col, row)
	l.dev.Print([]byte(text))
}
