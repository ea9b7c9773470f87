package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/merliot/sonar"
	"github.com/merliot/sonar/panel"
	"github.com/merliot/sonar/sim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type options struct {
	script   string
	ticks    int
	headless bool
	realtime bool
	logLevel string
	logFile  string
}

func newCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "sonar-sim",
		Short:        "Run the sonar monitor against a simulated rangefinder",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.script, "script", "s", sim.DefaultScript, "echo widths in microseconds, repeated; \"timeout\" for no echo")
	flags.IntVarP(&opts.ticks, "ticks", "n", 0, "stop after this many ticks (0 runs forever)")
	flags.BoolVar(&opts.headless, "headless", false, "no panel, log to stderr; needs --ticks")
	flags.BoolVar(&opts.realtime, "realtime", true, "pace the simulation with the wall clock")
	flags.StringVarP(&opts.logLevel, "log-level", "l", sonar.LogLevel(), "log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "diagnostic log file when the panel is shown")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	if opts.headless && opts.ticks <= 0 {
		return errors.New("--headless needs --ticks")
	}
	widths, err := sim.ParseScript(opts.script)
	if err != nil {
		return err
	}

	out := cmd.ErrOrStderr()
	if !opts.headless {
		out = io.Discard
		if opts.logFile != "" {
			f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return errors.Wrap(err, "open log file")
			}
			defer f.Close()
			out = f
		}
	}
	log, err := sonar.NewLogger(opts.logLevel, out)
	if err != nil {
		return err
	}

	p := panel.New("sonar-sim")
	hal := sim.New(p, widths, time.Now(), opts.realtime && !opts.headless)
	monitor := sonar.NewMonitor(hal, log)

	if opts.headless {
		tick(monitor, opts.ticks)
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "new screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	go tick(monitor, opts.ticks)
	if err := p.Run(context.Background(), screen); err != context.Canceled {
		return err
	}
	return nil
}

func tick(m *sonar.Monitor, ticks int) {
	if ticks <= 0 {
		m.Run()
	}
	for i := 0; i < ticks; i++ {
		m.Tick()
	}
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
