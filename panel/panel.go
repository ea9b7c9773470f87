// Package panel mirrors the monitor's lamps, buzzer and character display
// and draws them on a terminal with tcell.
package panel

import (
	"context"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/merliot/sonar"
)

const refresh = 100 * time.Millisecond

// Panel is a sonar.Indicators and a sonar.Display.  It is safe to update
// from the monitor loop while another goroutine draws it.
type Panel struct {
	mu      sonar.Mutex
	title   string
	leds    [len(sonar.Leds)]bool
	buzzing bool
	lcd     [sonar.DisplayRows][sonar.DisplayCols]rune
}

func New(title string) *Panel {
	p := &Panel{title: title}
	p.Clear()
	return p
}

func (p *Panel) Set(led sonar.Led, on bool) {
	p.mu.Lock()
	p.leds[led] = on
	p.mu.Unlock()
}

func (p *Panel) Led(led sonar.Led) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.leds[led]
}

// SetBuzzer shows whether the buzzer is sounding
func (p *Panel) SetBuzzer(on bool) {
	p.mu.Lock()
	p.buzzing = on
	p.mu.Unlock()
}

func (p *Panel) Buzzing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buzzing
}

func (p *Panel) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for row := range p.lcd {
		for col := range p.lcd[row] {
			p.lcd[row][col] = ' '
		}
	}
}

// Print writes text at (col, row); whatever runs past the edge is lost
func (p *Panel) Print(col, row uint8, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if int(row) >= sonar.DisplayRows {
		return
	}
	x := int(col)
	for _, r := range text {
		if x >= sonar.DisplayCols {
			break
		}
		p.lcd[row][x] = r
		x++
	}
}

// Line returns a display row with trailing blanks trimmed
func (p *Panel) Line(row int) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return strings.TrimRight(string(p.lcd[row][:]), " ")
}

var ledStyles = [len(sonar.Leds)]tcell.Style{
	sonar.Green:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	sonar.Yellow: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	sonar.Red:    tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

var dim = tcell.StyleDefault.Foreground(tcell.ColorGray)

// Draw renders the panel in the top left corner of screen:
//
//	 sonar  (q to quit)
//	 ● ○ ○  BEEP
//	+----------------+
//	|Dist: 220 cm    |
//	|ESTADO: NORMAL  |
//	+----------------+
func (p *Panel) Draw(screen tcell.Screen) {
	p.mu.Lock()
	defer p.mu.Unlock()

	screen.Clear()
	drawText(screen, 1, 0, " "+p.title+"  (q to quit)", tcell.StyleDefault.Bold(true))

	for i, on := range p.leds {
		r, style := '○', dim
		if on {
			r, style = '●', ledStyles[i]
		}
		screen.SetContent(1+2*i, 1, r, nil, style)
	}
	if p.buzzing {
		drawText(screen, 8, 1, "BEEP", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	} else {
		drawText(screen, 8, 1, "----", dim)
	}

	border := "+" + strings.Repeat("-", sonar.DisplayCols) + "+"
	drawText(screen, 0, 2, border, dim)
	for row := range p.lcd {
		y := 3 + row
		screen.SetContent(0, y, '|', nil, dim)
		drawText(screen, 1, y, string(p.lcd[row][:]), tcell.StyleDefault)
		screen.SetContent(1+sonar.DisplayCols, y, '|', nil, dim)
	}
	drawText(screen, 0, 3+sonar.DisplayRows, border, dim)

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run draws the panel every refresh until ctx is done or the user quits
// with q or Ctrl-C.  The screen must already be initialized; Run
// finalizes it on return.
func (p *Panel) Run(ctx context.Context, screen tcell.Screen) error {
	screen.HideCursor()
	defer screen.Fini()

	events := make(chan tcell.Event, 1)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	p.Draw(screen)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return context.Canceled
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			p.Draw(screen)
		}
	}
}
