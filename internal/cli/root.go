// Package cli wires command-line flags into a single watch run.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"pricewatch/internal/config"
	"pricewatch/internal/fetcher"
	"pricewatch/internal/notifier"
	"pricewatch/internal/watcher"
)

var (
	flagConfig      string
	flagURL         string
	flagHistory     string
	flagForceNotify bool
	flagTimeout     int
	flagUserAgent   string
)

var rootCmd = &cobra.Command{
	Use:   "pricewatch",
	Short: "Watch a product page and send a Telegram message when the price changes",
	Long: `pricewatch fetches a single product page, extracts the listed price,
compares it against the locally persisted price history and sends a
Telegram notification when the price changed. Intended to be run
periodically by an external scheduler (cron, systemd timer).`,
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "pricewatch.yaml", "Optional YAML config file")
	rootCmd.Flags().StringVar(&flagURL, "url", config.DefaultURL, "Product URL")
	rootCmd.Flags().StringVar(&flagHistory, "history", config.DefaultHistoryPath, "History JSON path")
	rootCmd.Flags().BoolVar(&flagForceNotify, "force-notify", false, "Send message even if unchanged")
	rootCmd.Flags().IntVar(&flagTimeout, "timeout", config.DefaultTimeoutSeconds, "HTTP timeout seconds")
	rootCmd.Flags().StringVar(&flagUserAgent, "user-agent", config.DefaultUserAgent, "HTTP User-Agent")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Explicit flags win over file and environment values.
	if cmd.Flags().Changed("url") {
		cfg.URL = flagURL
	}
	if cmd.Flags().Changed("history") {
		cfg.HistoryPath = flagHistory
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent = flagUserAgent
	}
	cfg.ForceNotify = flagForceNotify

	timeout := time.Duration(cfg.Timeout) * time.Second
	f := fetcher.New(timeout, cfg.UserAgent)
	n := notifier.New(cfg.Telegram.BotToken, cfg.Telegram.ChatID, timeout)

	return watcher.New(cfg, f, n).Run(context.Background())
}

// Execute runs the root command and returns its error for the caller
// to map onto the process exit code.
func Execute() error {
	return rootCmd.Execute()
}
