//go:build tinygo

package tiny

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	oledWidth  = 128
	oledHeight = 32
	// proggy TinySZ8pt7b cell, 16 columns fit in 128 pixels
	glyphWidth  = 8
	glyphHeight = 14
)

var white = color.RGBA{255, 255, 255, 255}

// Oled draws the two text rows on a 128x32 SSD1306 in place of a
// character LCD
type Oled struct {
	dev ssd1306.Device
}

func NewOled(bus drivers.I2C) *Oled {
	o := &Oled{dev: ssd1306.NewI2C(bus)}
	o.dev.Configure(ssd1306.Config{
		Width:    oledWidth,
		Height:   oledHeight,
		Address:  ssd1306.Address_128_32,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	o.dev.ClearDisplay()
	return o
}

func (o *Oled) Clear() {
	o.dev.ClearDisplay()
}

func (o *Oled) Print(col, row uint8, text string) {
	x := int16(col) * glyphWidth
	y := int16(row+1)*glyphHeight - 2
	tinyfont.WriteLine(&o.dev, &proggy.TinySZ8pt7b, x, y, text, white)
	o.dev.Display()
}
