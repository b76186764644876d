package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shotbook/internal/config"
	"shotbook/internal/logger"
	"shotbook/internal/scheduler"
	"shotbook/internal/screenshot"
)

var captureConfigPath string
var captureInterval string
var captureCron string
var captureDisplay int

func NewCaptureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture the screen into the screenshot folder",
		Long:  "Captures the given display into the input folder under the canonical Screenshot_YYYY-MM-DD-HH-MM-SS-mmm.png name. With --interval or --cron it keeps capturing until interrupted.",
		RunE:  runCapture,
	}

	cmd.Flags().StringVarP(&captureConfigPath, "config", "c", "", "Path to config file")
	cmd.Flags().StringVar(&captureInterval, "interval", "", "Repeat at a fixed interval (e.g. 5m)")
	cmd.Flags().StringVar(&captureCron, "cron", "", "Repeat on a cron expression (with seconds field)")
	cmd.Flags().IntVarP(&captureDisplay, "display", "d", 0, "Display to capture")

	return cmd
}

func runCapture(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(captureConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if captureInterval != "" && captureCron != "" {
		return fmt.Errorf("--interval and --cron are mutually exclusive")
	}

	captureOnce := func() error {
		path, err := screenshot.Capture(captureDisplay, cfg.InputDir)
		if err != nil {
			return err
		}
		logger.GetLogger().Infof("Captured %s", path)
		return nil
	}

	if captureInterval == "" && captureCron == "" {
		if err := captureOnce(); err != nil {
			return err
		}
		return nil
	}

	var sched scheduler.Scheduler
	if captureCron != "" {
		sched = scheduler.NewCronScheduler(captureCron)
	} else {
		interval, err := time.ParseDuration(captureInterval)
		if err != nil {
			return fmt.Errorf("invalid --interval: %w", err)
		}
		sched = scheduler.NewFixedRateScheduler(interval)
	}

	if err := sched.Start(captureOnce); err != nil {
		return fmt.Errorf("failed to start capture scheduler: %w", err)
	}
	defer sched.Stop()

	fmt.Fprintf(os.Stdout, "Capturing into %s, press Ctrl+C to stop\n", cfg.InputDir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	return nil
}
