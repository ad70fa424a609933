// Command bankruptcysentiment correlates positive media coverage with the
// share of small businesses expecting bankruptcy, one chart per business
// size and time horizon.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"BankruptcySentiment/internal/app"
	"BankruptcySentiment/internal/config"
	"BankruptcySentiment/internal/domain"
	"BankruptcySentiment/internal/logging"
	"BankruptcySentiment/internal/viewer"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var cfg config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "bankruptcysentiment",
	Short:         "Positive media representation vs. time until bankruptcy",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
		} else {
			cfg = config.Load("")
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		if dir, _ := cmd.Flags().GetString("output"); dir != "" {
			cfg.Output.Dir = dir
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: $SENTIMENT_CONFIG or built-in defaults)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("output", "", "chart output directory override")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(viewCmd)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// newApplication logs to logOut so log lines stay off the stdout tables.
func newApplication(c config.Config, logOut io.Writer) *app.Application {
	return app.New(c, logging.NewWithWriter(logOut, c.Logging.Level, c.Logging.Format))
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bankruptcysentiment %s (commit %s)\n", version, commit)
	},
}

// --- Run Command ---

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Assemble and render every horizon/business-size chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		result, err := newApplication(cfg, os.Stderr).Run(ctx, nil, true)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), statsTable(result.Stats))
		fmt.Fprintln(cmd.OutOrStdout(), chartsTable(result.Series, result.Rendered))
		return nil
	},
}

// --- Series Command ---

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Print the quarterly series of one horizon/business-size pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		horizon, _ := cmd.Flags().GetInt("horizon")
		size, _ := cmd.Flags().GetInt("size")
		render, _ := cmd.Flags().GetBool("render")

		pair, err := bandPair(horizon, size)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		result, err := newApplication(cfg, os.Stderr).Run(ctx, []domain.BandPair{pair}, render)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), seriesTable(result.Series[0]))
		if render {
			fmt.Fprintln(cmd.OutOrStdout(), "chart: "+result.Rendered[0])
		}
		return nil
	},
}

func init() {
	seriesCmd.Flags().Int("horizon", 0, "horizon band index 0..4 (less than 1 month .. 12 months or more)")
	seriesCmd.Flags().Int("size", 0, "business size index 0..3 (1 to 4 .. 100 or more employees)")
	seriesCmd.Flags().Bool("render", false, "also write the SVG chart")
}

func bandPair(horizon, size int) (domain.BandPair, error) {
	h, err := domain.HorizonBandAt(horizon)
	if err != nil {
		return domain.BandPair{}, err
	}
	e, err := domain.EmployeeBandAt(size)
	if err != nil {
		return domain.BandPair{}, err
	}
	return domain.BandPair{Horizon: h, Employee: e}, nil
}

// --- View Command ---

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Render every chart and browse them interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		result, err := newApplication(cfg, os.Stderr).Run(ctx, nil, true)
		if err != nil {
			return err
		}

		entries := make([]viewer.Entry, len(result.Series))
		for i, s := range result.Series {
			entries[i] = viewer.Entry{Series: s, Path: result.Rendered[i]}
		}
		return viewer.Run(entries)
	},
}
