package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/markusressel/spiro2go/internal/api"
	"github.com/markusressel/spiro2go/internal/configuration"
	"github.com/markusressel/spiro2go/internal/controller"
	"github.com/markusressel/spiro2go/internal/duty"
	"github.com/markusressel/spiro2go/internal/hardware"
	"github.com/markusressel/spiro2go/internal/inputs"
	"github.com/markusressel/spiro2go/internal/outputs"
	"github.com/markusressel/spiro2go/internal/ramp"
	"github.com/markusressel/spiro2go/internal/statistics"
	"github.com/markusressel/spiro2go/internal/switches"
	"github.com/markusressel/spiro2go/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.Warning("spiro2go is not running as root, writing to sysfs devices will probably fail")
	}

	board, err := InitializeObjects()
	if err != nil {
		ui.Fatal("%v", err)
	}

	config := configuration.CurrentConfig
	ctrl := controller.NewController(board, NewControllerOptions(config))

	statistics.Register(statistics.NewControllerCollector(config.Controller.Output, ctrl.Statistics()))
	statistics.Register(statistics.NewInputCollector(collectInputs()))
	statistics.Register(statistics.NewOutputCollector(collectOutputs()))

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			port := config.Statistics.Port
			if port <= 0 || port >= 65535 {
				port = 9000
			}
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}

			g.Add(func() error {
				ui.Info("Starting statistics server on port %d...", port)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start prometheus metrics endpoint: %w", err)
				}
				return nil
			}, func(err error) {
				ui.Info("Stopping statistics server...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %v", err)
				}
			})
		}
	}
	{
		if config.Api.Enabled {
			// === REST api
			rest := api.CreateRestService(ctrl.Statistics(), prometheus.DefaultRegisterer)
			addr := fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port)

			g.Add(func() error {
				ui.Info("Starting REST api on %s...", addr)
				if err := rest.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("cannot start REST api: %w", err)
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := rest.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping REST api: %v", err)
				}
			})
		}
	}
	{
		// === controller
		g.Add(func() error {
			ui.Info("Starting controller for output '%s'...", config.Controller.Output)
			err := ctrl.Run(ctx)
			ui.Info("Controller stopped.")
			return err
		}, func(err error) {
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// InitializeObjects creates all configured devices and returns the board
// composed of the devices referenced by the controller.
func InitializeObjects() (*hardware.Board, error) {
	config := configuration.CurrentConfig

	for _, c := range config.Inputs {
		input, err := inputs.NewInput(c)
		if err != nil {
			return nil, fmt.Errorf("unable to process input configuration %s: %w", c.ID, err)
		}
		inputs.InputMap.Set(c.ID, input)
	}

	for _, c := range config.Outputs {
		output, err := outputs.NewOutput(c)
		if err != nil {
			return nil, fmt.Errorf("unable to process output configuration %s: %w", c.ID, err)
		}
		outputs.OutputMap.Set(c.ID, output)
	}

	for _, c := range config.Switches {
		s, err := switches.NewSwitch(c)
		if err != nil {
			return nil, fmt.Errorf("unable to process switch configuration %s: %w", c.ID, err)
		}
		switches.SwitchMap.Set(c.ID, s)
	}

	input, ok := inputs.InputMap.Get(config.Controller.Input)
	if !ok {
		return nil, fmt.Errorf("input '%s' of controller not found", config.Controller.Input)
	}
	output, ok := outputs.OutputMap.Get(config.Controller.Output)
	if !ok {
		return nil, fmt.Errorf("output '%s' of controller not found", config.Controller.Output)
	}
	s, ok := switches.SwitchMap.Get(config.Controller.Switch)
	if !ok {
		return nil, fmt.Errorf("switch '%s' of controller not found", config.Controller.Switch)
	}

	return hardware.NewBoard(input, output, s), nil
}

func NewControllerOptions(config configuration.Configuration) controller.Options {
	return controller.Options{
		PwmMin:            duty.DutyCycle(config.Controller.PwmMin),
		WarmupDuty:        duty.DutyCycle(config.Controller.WarmupDuty),
		WarmupDuration:    config.Controller.WarmupDuration,
		ManualPollingRate: config.Controller.ManualPollingRate,
		Delay:             NewDelay(config.Ramp),
	}
}

// NewDelay creates the countdown wait between two ramp steps
func NewDelay(config configuration.RampConfig) *ramp.Delay {
	var ticker ramp.Ticker
	switch config.Ticker {
	case configuration.TickerSpin:
		ticker = ramp.NewSpinTicker(config.SpinLoops)
	default:
		ticker = ramp.NewSleepTicker(config.TickDuration)
	}
	return ramp.NewDelay(int16(config.CountdownBudget), int16(config.DelayOffset), ticker)
}

func collectInputs() []inputs.Input {
	var result []inputs.Input
	for _, c := range configuration.CurrentConfig.Inputs {
		if input, ok := inputs.InputMap.Get(c.ID); ok {
			result = append(result, input)
		}
	}
	return result
}

func collectOutputs() []outputs.Output {
	var result []outputs.Output
	for _, c := range configuration.CurrentConfig.Outputs {
		if output, ok := outputs.OutputMap.Get(c.ID); ok {
			result = append(result, output)
		}
	}
	return result
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
		os.Exit(1)
	}
	return strings.TrimSpace(string(stdout))
}
