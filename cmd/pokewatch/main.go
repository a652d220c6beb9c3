package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mauricio-alvarez/pokeserve/internal/monitor"
)

var (
	baseURL     string
	historyPath string
	endpoint    string
)

// rootCmd launches the interactive monitoring menu.
var rootCmd = &cobra.Command{
	Use:   "pokewatch",
	Short: "Console monitoring bot for the Pokemon API",
	Long: `pokewatch probes a running Pokemon API service and reports on its
latency and availability. Run without arguments for the interactive
menu, or use the subcommands for one-shot checks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, closeHistory := newMonitor()
		defer closeHistory()
		return runMenu(m)
	},
}

var latencyCmd = &cobra.Command{
	Use:   "latency",
	Short: "Probe an endpoint repeatedly and report latency statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := cmd.Flags().GetInt("duration")
		if err != nil {
			return err
		}

		m, closeHistory := newMonitor()
		defer closeHistory()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		report := m.CheckLatency(ctx, endpoint, time.Duration(minutes)*time.Minute)
		printLatencyReport(report)
		return nil
	},
}

var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Probe an endpoint and report its availability percentage",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := cmd.Flags().GetInt("days")
		if err != nil {
			return err
		}

		m, closeHistory := newMonitor()
		defer closeHistory()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		report := m.CheckAvailability(ctx, endpoint, days)
		printAvailabilityReport(report)
		return nil
	},
}

var graphCmd = &cobra.Command{
	Use:       "graph [latency|availability]",
	Short:     "Render an ASCII trend graph for an endpoint",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"latency", "availability"},
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := cmd.Flags().GetInt("days")
		if err != nil {
			return err
		}

		m, closeHistory := newMonitor()
		defer closeHistory()

		m.RenderGraph(args[0], endpoint, days)
		return nil
	},
}

// newMonitor builds the monitor; a failed history open degrades to
// non-persistent probing rather than aborting.
func newMonitor() (*monitor.Monitor, func()) {
	history, err := monitor.OpenHistory(historyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: probe history unavailable: %v\n", err)
		return monitor.New(baseURL, nil, os.Stdout), func() {}
	}
	return monitor.New(baseURL, history, os.Stdout), func() { history.Close() }
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8000", "base URL of the service under watch")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history", "pokewatch.db", "path of the probe history database")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "/poke/search", "endpoint to probe")

	latencyCmd.Flags().Int("duration", 5, "sampling duration in minutes")
	availabilityCmd.Flags().Int("days", 1, "availability window in days")
	graphCmd.Flags().Int("days", 7, "trend window in days")

	rootCmd.AddCommand(latencyCmd, availabilityCmd, graphCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
