package cmd

import (
	"fmt"

	"github.com/autocare-tools/acfetch/internal/config"
	"github.com/autocare-tools/acfetch/internal/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "List the catalog's databases",
	Args:  cobra.NoArgs,
	RunE:  runDatabases,
}

var tablesCmd = &cobra.Command{
	Use:   "tables <database>",
	Short: "List the tables of a database",
	Args:  cobra.ExactArgs(1),
	RunE:  runTables,
}

func init() {
	rootCmd.AddCommand(databasesCmd)
	rootCmd.AddCommand(tablesCmd)
}

func runDatabases(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Logger = config.InitLogger(cfg.LogLevel)

	token, err := ensureToken(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	databases, err := newCatalogClient(cfg, token.AccessToken).ListDatabases(cmd.Context())
	if err != nil {
		return fmt.Errorf("list databases: %w", err)
	}
	if len(databases) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No databases found.")
		return nil
	}

	rows := make([][]string, 0, len(databases))
	for _, database := range databases {
		rows = append(rows, []string{database.Name})
	}
	output.RenderTable(cmd.OutOrStdout(), []string{"database"}, rows)
	return nil
}

func runTables(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Logger = config.InitLogger(cfg.LogLevel)

	token, err := ensureToken(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	database := args[0]
	tables, err := newCatalogClient(cfg, token.AccessToken).ListTables(cmd.Context(), database)
	if err != nil {
		return fmt.Errorf("list tables of %s: %w", database, err)
	}
	if len(tables) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No tables found in %s.\n", database)
		return nil
	}

	rows := make([][]string, 0, len(tables))
	for _, table := range tables {
		rows = append(rows, []string{table.Name})
	}
	output.RenderTable(cmd.OutOrStdout(), []string{"table"}, rows)
	return nil
}
