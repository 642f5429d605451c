// Package cli implements the analyzer command tree.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/apiclient"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/internal/config"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/logger"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/placeholder"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/telemetry"
)

var (
	cfgFile string
	debug   bool
	baseURL string
)

// Populated by setup before any subcommand runs.
var (
	cfg *config.Config
	tel *telemetry.Provider
)

var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "JSONPlaceholder client and analytics console",
	Long: `analyzer explores the JSONPlaceholder API from the command line:
typed CRUD on posts, users, todos, and albums, an aggregate dataset
report, and a local sandbox server for offline use.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the command tree under ctx. Canceling ctx stops
// in-flight requests and the sandbox server.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ./cmd/analyzer/config.yml, ./config.yml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the API base URL")
}

func setup(cmd *cobra.Command, _ []string) error {
	// version must work even when no config is reachable.
	if cmd.Name() == "version" {
		return nil
	}

	var opts []config.LoaderOption
	if cfgFile != "" {
		opts = append(opts, config.WithConfigFile(cfgFile))
	}
	loaded, err := config.Load(opts...)
	if err != nil {
		return err
	}

	if debug {
		loaded.App.Debug = true
		loaded.Log.Level = "debug"
	}
	if baseURL != "" {
		loaded.API.BaseURL = baseURL
	}
	if debug || baseURL != "" {
		if err := loaded.Validate(); err != nil {
			return err
		}
	}
	cfg = loaded

	logger.Init(loaded.Log)

	provider, err := telemetry.Init(cmd.Context(), loaded.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	tel = provider
	return nil
}

func teardown(*cobra.Command, []string) error {
	if tel == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return tel.Shutdown(ctx)
}

// newService assembles the client stack: typed repositories over a
// retrying client over the HTTP client, sharing one metrics recorder.
func newService() (*placeholder.Service, error) {
	var metrics *telemetry.ClientMetrics
	if cfg.Telemetry.Enabled {
		m, err := telemetry.NewClientMetrics(telemetry.Meter("apiclient"))
		if err != nil {
			return nil, err
		}
		metrics = m
	}

	client, err := apiclient.New(cfg.API.ClientConfig(), apiclient.WithMetrics(metrics))
	if err != nil {
		return nil, err
	}
	clientCfg := client.Config()
	caller := apiclient.NewRetrier(client, clientCfg.RetryPolicy(), apiclient.WithRetrierMetrics(metrics))
	return placeholder.New(caller, placeholder.Options{CacheTTL: cfg.Cache.TTL}), nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: expected a positive integer", raw)
	}
	return id, nil
}
