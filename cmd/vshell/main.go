package main

import (
	"fmt"
	"os"

	"vshell/internal/config"
	"vshell/internal/launch"
	"vshell/internal/log"
	"vshell/internal/power"
	"vshell/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vshell",
		Short:         "A visual shell for browsing and playing media",
		Long:          `vshell browses its media directory, opens files with the matching viewer and keeps the display powered only while someone is using it.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runBrowser(cfg)
		},
	}

	rootCmd.AddCommand(powerCmd())
	rootCmd.AddCommand(devicesCmd())

	return rootCmd
}

// runBrowser owns the terminal until the user backs out of the root
// directory. Only a terminal failure is returned.
func runBrowser(cfg *config.Config) error {
	// The screen belongs to the browser
	log.Configure(log.WithFile(cfg.LogFile))
	defer log.Close()

	ctrl, _, err := newController(cfg)
	if err != nil {
		return err
	}
	session := power.NewSession(ctrl, cfg.Timeout())
	defer session.Stop()

	if watch, err := power.NewWatch(cfg.Device.DevDir, ctrl); err != nil {
		log.LogWithFields(log.F("dir", cfg.Device.DevDir), log.F("error", err)).Warn("Device watch unavailable")
	} else if err := watch.Start(); err != nil {
		log.LogWithFields(log.F("error", err)).Warn("Device watch unavailable")
	} else {
		defer watch.Stop()
	}

	launcher := launch.New(launch.Table(cfg.Commands), launch.Helper{
		Enable:  cfg.Helper.Enable,
		Disable: cfg.Helper.Disable,
	})

	log.LogWithFields(log.F("root", cfg.Root), log.F("timeout", cfg.Timeout()), log.F("version", version)).Info("Starting")
	session.Touch()

	m := tui.New(tui.Options{
		Root:     cfg.Root,
		Hidden:   cfg.HiddenPrefix,
		Power:    session,
		Launcher: launcher,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.LogError(err, "Terminal session failed")
		return fmt.Errorf("error running browser: %w", err)
	}

	log.Info("Exiting")
	return nil
}

func newController(cfg *config.Config) (*power.Controller, *power.SysfsDiscoverer, error) {
	disc, err := power.NewSysfsDiscoverer(cfg.Device.SysfsClass, cfg.Device.DevDir, cfg.Device.Signature)
	if err != nil {
		return nil, nil, err
	}
	ctrl := power.New(disc, power.WithCommands(cfg.OnBytes(), cfg.OffBytes()))
	return ctrl, disc, nil
}
