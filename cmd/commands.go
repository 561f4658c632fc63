package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/Akashdeep-Patra/posdash/internal/dashboard"
	"github.com/Akashdeep-Patra/posdash/internal/metrics"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// buildVersionCmd creates the `posdash version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if jsonOutput {
				return writeJSON(out, info)
			}
			fmt.Fprintf(out, "posdash %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
			fmt.Fprintf(out, "  go:      %s\n", runtime.Version())
			fmt.Fprintf(out, "  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `posdash completion` subcommand.
func buildCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for posdash.

Examples:
  posdash completion bash > /etc/bash_completion.d/posdash
  posdash completion zsh > "${fpath[1]}/_posdash"
  posdash completion fish > ~/.config/fish/completions/posdash.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}

// buildBranchesCmd lists the selectable branches.
func buildBranchesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "branches",
		Short: "List branches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, dashboard.Branches)
			}
			for _, b := range dashboard.Branches {
				fmt.Fprintf(out, "%-6s %-12s %s\n", b.ID, b.Name, b.Location)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output branches as JSON")

	return cmd
}

// branchReport is the `posdash metrics` output.
type branchReport struct {
	Branch  dashboard.Branch      `json:"branch"`
	Metrics metrics.BranchMetrics `json:"metrics"`
	Cards   []metrics.Card        `json:"-"`
}

// buildMetricsCmd prints the headline metrics of one branch. Without an
// argument on a terminal the branch is picked interactively.
func buildMetricsCmd() *cobra.Command {
	var jsonOutput bool

	ids := make([]string, len(dashboard.Branches))
	for i, b := range dashboard.Branches {
		ids[i] = b.ID
	}

	cmd := &cobra.Command{
		Use:       "metrics [branch]",
		Short:     "Print a branch's headline metrics",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: ids,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := dashboard.DefaultBranch().ID
			switch {
			case len(args) == 1:
				id = args[0]
			case isTerminal():
				picked, err := pickBranch()
				if err != nil {
					return err
				}
				id = picked
			}

			b, ok := dashboard.FindBranch(id)
			if !ok {
				return fmt.Errorf("metrics %q: %w", id, dashboard.ErrUnknownBranch)
			}
			report := branchReport{Branch: b, Metrics: metrics.Lookup(b.ID)}
			report.Cards = metrics.Cards(report.Metrics)

			out := cmd.OutOrStdout()
			if jsonOutput {
				return writeJSON(out, report)
			}
			return printReport(out, report)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output metrics as JSON")

	return cmd
}

func printReport(w io.Writer, r branchReport) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n", r.Branch.Name, r.Branch.Location); err != nil {
		return err
	}
	for _, c := range r.Cards {
		if _, err := fmt.Fprintf(w, "  %-18s %10s  %-8s yesterday %s\n",
			c.Title, c.Metric.Value, c.Metric.Badge(), c.Metric.Yesterday); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isTerminal checks if stdin is connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// pickBranch asks for a branch with a huh select.
func pickBranch() (string, error) {
	id := dashboard.DefaultBranch().ID
	opts := make([]huh.Option[string], len(dashboard.Branches))
	for i, b := range dashboard.Branches {
		opts[i] = huh.NewOption(b.Name+" · "+b.Location, b.ID)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which branch?").
				Options(opts...).
				Value(&id),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("pick branch: %w", err)
	}
	return id, nil
}
