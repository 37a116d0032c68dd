package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"carmatch/internal/catalog"
	"carmatch/internal/vehicle"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog database utilities",
	}

	catalogCmd.AddCommand(newCatalogImportCommand(ctx))
	catalogCmd.AddCommand(newCatalogCountCommand(ctx))

	return catalogCmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <records.json>",
		Short: "Replace the catalog database with records from a JSON file",
		Long: "Reads vehicle records, either a JSON array or JSON lines with one " +
			"record per line, and replaces the contents of the catalog database. " +
			"The running daemon picks the new records up on its next refresh cycle.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read records file: %w", err)
			}
			records, err := parseRecords(data)
			if err != nil {
				return fmt.Errorf("parse records file: %w", err)
			}
			if len(records) == 0 {
				return fmt.Errorf("records file %s contains no vehicles", args[0])
			}

			store, err := catalog.OpenStore(cfg.CatalogDBPath())
			if err != nil {
				return fmt.Errorf("open catalog store: %w", err)
			}
			defer store.Close()

			if err := store.ReplaceAll(cmd.Context(), records); err != nil {
				return fmt.Errorf("import records: %w", err)
			}
			count, err := store.Count(cmd.Context())
			if err != nil {
				return fmt.Errorf("count records: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d vehicles into %s\n", count, store.Path())
			return nil
		},
	}
	return cmd
}

// parseRecords accepts either a single JSON array of vehicle records or
// JSON lines with one record per line.
func parseRecords(data []byte) ([]vehicle.Spec, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []vehicle.Spec
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var records []vehicle.Spec
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	for {
		var rec vehicle.Spec
		if err := dec.Decode(&rec); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func newCatalogCountCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count vehicles in the catalog database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := catalog.OpenStore(cfg.CatalogDBPath())
			if err != nil {
				return fmt.Errorf("open catalog store: %w", err)
			}
			defer store.Close()

			count, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d vehicles in %s\n", count, store.Path())
			return nil
		},
	}
}
