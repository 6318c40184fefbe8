package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/markusressel/ecfan/internal/api"
	"github.com/markusressel/ecfan/internal/configuration"
	"github.com/markusressel/ecfan/internal/controller"
	"github.com/markusressel/ecfan/internal/fans"
	"github.com/markusressel/ecfan/internal/persistence"
	"github.com/markusressel/ecfan/internal/statistics"
	"github.com/markusressel/ecfan/internal/ui"
	"github.com/markusressel/ecfan/internal/view"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
)

const shutdownTimeout = 5 * time.Second

type DaemonOptions struct {
	// LiveView redraws the history charts of all fans on every tick
	LiveView bool
	Style    view.Style
	Color    bool
}

func RunDaemon(options DaemonOptions) {
	if os.Geteuid() != 0 {
		ui.Warning("Accessing the embedded controller usually requires root permissions")
	}

	config := configuration.CurrentConfig

	bank, fanList, err := InitializeObjects(afero.NewOsFs(), config)
	if err != nil {
		ui.Fatal("%v", err)
	}
	if len(fanList) == 0 {
		ui.Fatal("No valid fan configurations, exiting.")
	}

	pers := persistence.NewPersistence(config.DbPath)
	if err := pers.Init(); err != nil {
		ui.Fatal("Unable to prepare database at %s: %v", config.DbPath, err)
	}
	restoreHistory(pers, fanList)

	fanController := controller.NewController(bank, fanList, config.PollingRate)
	statistics.Register(statistics.NewFanCollector(fanController))

	var area *pterm.AreaPrinter
	if options.LiveView {
		area, err = pterm.DefaultArea.Start()
		if err != nil {
			ui.Fatal("Cannot start live view: %v", err)
		}
		viewController := view.NewViewController(fanList, options.Style, options.Color)
		fanController.SetSampler(func(fanList []*fans.Fan) error {
			output, err := viewController.Render()
			if err != nil {
				return err
			}
			area.Update(output)
			return nil
		})
	}

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
			addServer(&g, "statistics", server)
		}
	}
	{
		if config.Api.Enabled {
			// === REST api
			rest := api.CreateRestService(fanController, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
			server := &http.Server{
				Addr:    fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port),
				Handler: rest,
			}
			addServer(&g, "api", server)
		}
	}
	{
		if config.Profiling.Enabled {
			// === pprof, handlers are registered on http.DefaultServeMux
			server := &http.Server{
				Addr:    fmt.Sprintf("%s:%d", config.Profiling.Host, config.Profiling.Port),
				Handler: http.DefaultServeMux,
			}
			addServer(&g, "profiling", server)
		}
	}
	{
		// === polling loop
		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Polling loop stopped.")
			return err
		}, func(err error) {
			cancel()
			if err != nil {
				ui.Warning("Something went wrong: %v", err)
			}
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

	runErr := g.Run()

	if area != nil {
		_ = area.Stop()
	}
	if err := fanController.RestoreModes(); err != nil {
		ui.Error("Unable to restore fan modes: %v", err)
		ui.NotifyWarn("ecfan", "Fans may still be under manual control: "+err.Error())
	}
	saveHistory(pers, fanList)

	if runErr != nil {
		_, _ = fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
	ui.Info("Done.")
	os.Exit(0)
}

func addServer(g *run.Group, name string, server *http.Server) {
	g.Add(func() error {
		ui.Info("Starting %s server on %s", name, server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("cannot start %s server: %w", name, err)
		}
		return nil
	}, func(err error) {
		ui.Info("Stopping %s server...", name)
		timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer timeoutCancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			ui.Warning("Error stopping %s server: %v", name, err)
		} else {
			ui.Info("%s server stopped.", name)
		}
	})
}

func restoreHistory(pers persistence.Persistence, fanList []*fans.Fan) {
	for _, fan := range fanList {
		snapshot, err := pers.LoadHistory(fan.GetName())
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				ui.Warning("Unable to load history of %s: %v", fan.GetName(), err)
			}
			continue
		}
		if err := fan.RestoreHistory(snapshot.Temperature, snapshot.Read); err != nil {
			ui.Warning("Discarding stored history of %s: %v", fan.GetName(), err)
			continue
		}
		ui.Debug("Restored %d samples of %s", len(snapshot.Temperature), fan.GetName())
	}
}

func saveHistory(pers persistence.Persistence, fanList []*fans.Fan) {
	for _, fan := range fanList {
		snapshot := persistence.HistorySnapshot{
			Temperature: fan.PeekTemperatureHistory(),
			Read:        fan.PeekReadHistory(),
		}
		if err := pers.SaveHistory(fan.GetName(), snapshot); err != nil {
			ui.Warning("Unable to save history of %s: %v", fan.GetName(), err)
		}
	}
}
