package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/merliot/sonar"
	"github.com/merliot/sonar/panel"
	"github.com/merliot/sonar/rpi"
)

func main() {
	logFile := sonar.GetEnv("SONAR_LOG_FILE", "sonar.log")
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	log, err := sonar.NewLogger(sonar.LogLevel(), f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := panel.New("sonar-rpi")
	hal, err := rpi.Open(rpi.PinsFromEnv(), p)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	go sonar.NewMonitor(hal, log).Run()

	// quitting the panel ends the process, monitor and all
	if err := p.Run(context.Background(), screen); err != context.Canceled {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
