package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/internal/report"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/logger"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate the full dataset into a summary report",
	Long: `report fetches posts, users, todos, and comments concurrently and
prints per-author output, todo completion rates, the longest post
titles, and comment volume.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		start := time.Now()
		res := report.Build(cmd.Context(), svc)
		if err := printResult(cmd.OutOrStdout(), res, report.Render); err != nil {
			return err
		}

		stats := svc.Posts.CacheStats()
		logger.WithComponent("cli").
			WithFields(logger.DurationFields("report", time.Since(start))).
			Debug("report complete", logger.Fields(
				"cache_hits", stats.Hits,
				"cache_misses", stats.Misses,
			))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
