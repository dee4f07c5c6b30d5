package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/autocare-tools/acfetch/internal/catalog"
	"github.com/autocare-tools/acfetch/internal/config"
	"github.com/autocare-tools/acfetch/internal/history"
	"github.com/autocare-tools/acfetch/internal/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type catalogAPI interface {
	ListDatabases(ctx context.Context) ([]catalog.Database, error)
	ListTables(ctx context.Context, database string) ([]catalog.Table, error)
	DownloadTable(ctx context.Context, database, table string) ([]json.RawMessage, error)
}

var newCatalogClient = func(cfg *config.Config, token string) catalogAPI {
	return catalog.NewClient(catalog.Options{
		BaseURL:    cfg.CatalogURL,
		DataHost:   cfg.DataHost,
		APIVersion: cfg.APIVersion,
		Token:      token,
		MaxPages:   cfg.MaxPages,
		Timeout:    cfg.HTTPTimeout,
		Logger:     log.Logger,
	})
}

var downloadCmd = &cobra.Command{
	Use:   "download [database] [table]",
	Short: "Download the full contents of a table to a JSON file",
	Long: `Download drains every page of the selected table and writes the
records to {output_dir}/{database}_{table}.json. Database and table are
picked interactively unless given as arguments.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Logger = config.InitLogger(cfg.LogLevel)

	ctx := cmd.Context()
	token, err := ensureToken(ctx, cfg)
	if err != nil {
		return err
	}

	client := newCatalogClient(cfg, token.AccessToken)
	menu := output.NewMenu(cmd.InOrStdin(), cmd.OutOrStdout())
	printer := output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	databases, err := client.ListDatabases(ctx)
	if err != nil {
		return fmt.Errorf("list databases: %w", err)
	}
	names := make([]string, 0, len(databases))
	for _, database := range databases {
		names = append(names, database.Name)
	}

	database, err := pickOption(menu, names, "Available Databases:", argAt(args, 0))
	if errors.Is(err, output.ErrQuit) {
		printer.Info("Exiting.")
		return nil
	}
	if err != nil {
		return err
	}

	tables, err := client.ListTables(ctx, database)
	if err != nil {
		return fmt.Errorf("list tables of %s: %w", database, err)
	}
	tableNames := make([]string, 0, len(tables))
	for _, table := range tables {
		tableNames = append(tableNames, table.Name)
	}

	table, err := pickOption(menu, tableNames, fmt.Sprintf("Available Tables in %s:", database), argAt(args, 1))
	if errors.Is(err, output.ErrQuit) {
		printer.Info("Exiting.")
		return nil
	}
	if err != nil {
		return err
	}

	started := time.Now()
	records, err := client.DownloadTable(ctx, database, table)
	if err != nil {
		return err
	}

	outputPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%s.json", database, table))
	if err := writeRecords(outputPath, records); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if err := history.NewStorage(cfg.DataDir).Append(&history.Record{
		Database:   database,
		Table:      table,
		Records:    len(records),
		OutputPath: outputPath,
		DurationMS: time.Since(started).Milliseconds(),
	}); err != nil {
		log.Warn().Err(err).Msg("record download history failed")
	}

	printer.Success("Table %q downloaded: %d records to %s", table, len(records), outputPath)
	return nil
}

// pickOption resolves a selection either from a preset argument or from the
// interactive menu.
func pickOption(menu *output.Menu, options []string, prompt, preset string) (string, error) {
	if preset != "" {
		for _, option := range options {
			if option == preset {
				return option, nil
			}
		}
		return "", fmt.Errorf("%q is not one of: %s", preset, strings.Join(options, ", "))
	}
	return menu.Choose(options, prompt)
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return strings.TrimSpace(args[i])
	}
	return ""
}

// writeRecords writes the accumulated records once, pretty-printed. Nothing
// touches the output path before the full download succeeds.
func writeRecords(path string, records []json.RawMessage) error {
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
