package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/Akashdeep-Patra/posdash/internal/app"
	"github.com/Akashdeep-Patra/posdash/internal/common"
	"github.com/Akashdeep-Patra/posdash/internal/config"
	"github.com/Akashdeep-Patra/posdash/internal/logger"
	"github.com/Akashdeep-Patra/posdash/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// The dashboard does nothing but render and dispatch; two OS threads
	// are plenty. An explicit GOMAXPROCS wins.
	if os.Getenv("GOMAXPROCS") == "" {
		runtime.GOMAXPROCS(min(2, runtime.NumCPU()))
	}
	debug.SetMemoryLimit(50 * 1024 * 1024) // 50 MiB
}

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "posdash:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "posdash",
		Short: "A terminal business dashboard",
		Long: `posdash is a point-of-sale business dashboard for the terminal.

It shows per-branch sales, purchases, expenses and profit alongside
inventory, financial, payment-method and top-customer summaries. The
layout follows the terminal width: wide terminals get a docked sidebar,
narrow ones an overlay drawer.`,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"posdash %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())
	rootCmd.AddCommand(buildBranchesCmd())
	rootCmd.AddCommand(buildMetricsCmd())

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a config file")
	rootCmd.Flags().Bool("debug", false, "Log at debug level")

	return rootCmd
}

func runApp(cmd *cobra.Command, _ []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if d, _ := cmd.Flags().GetBool("debug"); d {
		cfg.Debug = true
	}

	log, err := logger.Open(cfg.LogFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer func() { _ = log.Close() }()

	model := app.New(cfg, log)
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	if cfg.WatchConfig && cfg.File != "" {
		watchCh, stop, watchErr := watcher.Watch(cfg.File, 300*time.Millisecond)
		if watchErr != nil {
			log.Warn("config watch disabled", "file", cfg.File, "err", watchErr)
		} else {
			defer stop()
			go func() {
				for range watchCh {
					next, err := config.Load(cfg.File)
					if err != nil {
						p.Send(common.ErrMsg{Err: err})
						continue
					}
					next.Debug = next.Debug || cfg.Debug
					p.Send(common.ConfigReloadedMsg{Cfg: next})
				}
			}()
		}
	}

	log.Info("starting", "version", version, "config", cfg.File)
	_, err = p.Run()
	return err
}
