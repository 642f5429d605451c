package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/internal/fakeapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local JSONPlaceholder sandbox",
	Long: `serve starts an in-process JSONPlaceholder clone backed by a
deterministic dataset. Point the other commands at it with
--base-url for offline use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		srvCfg := fakeapi.Config{
			Host: cfg.Serve.Host,
			Port: cfg.Serve.Port,
		}
		srvCfg.ApplyDefaults()
		if err := srvCfg.Validate(); err != nil {
			return err
		}

		srv := fakeapi.New(srvCfg, nil)
		if err := srv.Start(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sandbox listening on %s\n", srv.BaseURL())

		<-cmd.Context().Done()

		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(stopCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
