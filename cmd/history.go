package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/autocare-tools/acfetch/internal/config"
	"github.com/autocare-tools/acfetch/internal/history"
	"github.com/autocare-tools/acfetch/internal/output"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Download history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List completed downloads",
	RunE:  runHistoryList,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	records, err := history.NewStorage(cfg.DataDir).List()
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No downloads recorded.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.CreatedAt.Format(time.RFC3339),
			record.Database,
			record.Table,
			strconv.Itoa(record.Records),
			record.OutputPath,
		})
	}
	output.RenderTable(cmd.OutOrStdout(), []string{"when", "database", "table", "records", "output"}, rows)
	return nil
}
