package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"proximity.klederson.com/internal/app"
	"proximity.klederson.com/internal/config"
	"proximity.klederson.com/internal/gpio"
	"proximity.klederson.com/internal/monitor"
	"proximity.klederson.com/internal/sensor"
	"proximity.klederson.com/internal/store"
)

var (
	opts     = config.Default()
	mode     = monitor.ModeOverwrite
	flagDemo bool
	flagLast int
	flagDB   string
	source   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "proximity",
		Short: "Proximity monitor - ultrasonic distance sampling with a running-average alarm",
		Long: `Proximity samples a distance sensor once per interval into a fixed-size
ring buffer, averages the window and lights a warning LED while the average
is below the threshold.

Real sensors need access to the GPIO character device (/dev/gpiochip*) or a
Bluetooth adapter.
Use --demo for a simulated obstacle without hardware.`,
		SilenceUsage: true,
		RunE:         run,
	}

	f := rootCmd.Flags()
	f.BoolVar(&flagDemo, "demo", false, "Run with a simulated sensor and LED (no hardware required)")
	f.StringVar(&source, "source", string(opts.Source), "Distance source: ultrasonic, ble or mock")
	f.Var(&mode, "mode", "Behavior on a full window: overwrite or strict")
	f.IntVar(&opts.Capacity, "capacity", opts.Capacity, "Samples in the averaging window")
	f.Float64Var(&opts.Threshold, "threshold", opts.Threshold, "Warn when the average distance (cm) is below this")
	f.DurationVar(&opts.Interval, "interval", opts.Interval, "Delay between readings")
	f.StringVar(&opts.Chip, "chip", opts.Chip, "GPIO chip the pins are offsets on")
	f.IntVar(&opts.TrigPin, "trig-pin", opts.TrigPin, "HC-SR04 trigger GPIO line")
	f.IntVar(&opts.EchoPin, "echo-pin", opts.EchoPin, "HC-SR04 echo GPIO line")
	f.IntVar(&opts.LEDPin, "led-pin", opts.LEDPin, "Warning LED GPIO line")
	f.StringVar(&opts.BLETarget, "ble-target", "", "MAC address of the BLE beacon to range (source=ble)")
	f.BoolVar(&opts.Headless, "headless", false, "Log events instead of drawing the dashboard")
	f.StringVar(&opts.Record, "record", "", "Record samples to this SQLite database")
	f.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file while the dashboard is shown")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Print samples recorded with --record",
		RunE:  history,
	}
	historyCmd.Flags().StringVar(&flagDB, "record", "proximity.db", "SQLite database to read")
	historyCmd.Flags().IntVarP(&flagLast, "last", "n", 20, "Number of samples to print")
	rootCmd.AddCommand(historyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts.Source = config.Source(source)
	if flagDemo {
		opts.Source = config.SourceMock
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logctx.NewContext(ctx, logger)

	sampler, led, closeHW, err := openHardware(ctx, opts)
	if err != nil {
		if opts.Source != config.SourceMock {
			fmt.Fprintln(os.Stderr, "GPIO access requires root or membership in the gpio group.")
			fmt.Fprintln(os.Stderr, "  ./proximity --demo    (demo mode, no hardware needed)")
		}
		return err
	}
	defer closeHW()

	sinks := monitor.MultiSink{}
	if opts.Record != "" {
		rec, err := store.Open(ctx, opts.Record)
		if err != nil {
			return fmt.Errorf("open recording: %w", err)
		}
		defer rec.Close()
		sinks = append(sinks, rec)
	}

	monOpts := monitor.Options{Capacity: opts.Capacity, Mode: mode, Interval: opts.Interval}
	actuator := sensor.NewThreshold(led, opts.Threshold)

	if opts.Headless {
		sinks = append(sinks, monitor.LogSink{})
		mon, err := monitor.New(monOpts, sampler, actuator, sinks)
		if err != nil {
			return err
		}
		logctx.Infof(ctx, "starting continuous data collection from %s", opts.Source)
		return mon.Run(ctx)
	}

	progSink := &app.ProgramSink{}
	sinks = append(sinks, progSink)
	mon, err := monitor.New(monOpts, sampler, actuator, sinks)
	if err != nil {
		return err
	}

	model := app.New(mon, progSink, string(opts.Source), opts.Threshold)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(30),
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := model.Start(runCtx, p)

	_, err = p.Run()
	cancel()
	<-done
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// openHardware returns the sampler and LED pin for the configured source.
// In mock mode the LED is an in-memory pin.
func openHardware(ctx context.Context, o config.Options) (monitor.Sampler, gpio.Pin, func(), error) {
	var led gpio.Pin = &gpio.NopPin{}
	if o.Source != config.SourceMock {
		pin, err := gpio.OpenLine(o.Chip, o.LEDPin, gpio.Out)
		if err != nil {
			return nil, nil, nil, err
		}
		led = pin
	}
	closeLED := func() {
		_ = led.Write(false)
		if err := led.Close(); err != nil {
			logctx.Error(ctx, "closing led", zap.Error(err))
		}
	}

	switch o.Source {
	case config.SourceUltrasonic:
		trig, err := gpio.OpenLine(o.Chip, o.TrigPin, gpio.Out)
		if err != nil {
			closeLED()
			return nil, nil, nil, err
		}
		echo, err := gpio.OpenLine(o.Chip, o.EchoPin, gpio.In)
		if err != nil {
			trig.Close()
			closeLED()
			return nil, nil, nil, err
		}
		u := sensor.NewUltrasonic(trig, echo)
		return u, led, func() {
			if err := u.Close(); err != nil {
				logctx.Error(ctx, "closing sensor", zap.Error(err))
			}
			closeLED()
		}, nil

	case config.SourceBLE:
		b := sensor.NewBLEProximity(o.BLETarget)
		if err := b.Start(ctx); err != nil {
			closeLED()
			return nil, nil, nil, err
		}
		return b, led, closeLED, nil

	default:
		return sensor.NewMock(time.Now().UnixNano()), led, closeLED, nil
	}
}

func newLogger(o config.Options) (*zap.Logger, error) {
	if o.Headless {
		return zap.NewDevelopment()
	}
	if o.LogFile == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{o.LogFile}
	cfg.ErrorOutputPaths = []string{o.LogFile}
	return cfg.Build()
}

func history(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	rec, err := store.Open(ctx, flagDB)
	if err != nil {
		return err
	}
	defer rec.Close()

	samples, err := rec.Recent(ctx, flagLast)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, s := range samples {
		fmt.Fprintf(out, "%s  %4d cm\n", s.At().Format(time.DateTime), s.Value)
	}
	return nil
}
