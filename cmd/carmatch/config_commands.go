package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"carmatch/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	configCmd.AddCommand(newConfigInitCommand(), newConfigValidateCommand())
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveInitTarget(targetPath)
			if err != nil {
				return err
			}

			if _, err := os.Stat(target); err == nil {
				if !overwrite {
					return fmt.Errorf("%s already exists, pass --overwrite to replace it", target)
				}
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("check config path: %w", err)
			}

			if err := config.CreateSample(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sample configuration written to %s\n", target)
			fmt.Fprintln(out, "Set xcatalog.base_url and paths.api_token, then start carmatchd.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination file (default: the user config location)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

func resolveInitTarget(path string) (string, error) {
	if path == "" {
		target, err := config.DefaultConfigPath()
		if err != nil {
			return "", fmt.Errorf("determine default config path: %w", err)
		}
		return target, nil
	}
	target, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return target, nil
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Check the configuration and report the effective settings",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, path, exists, err := config.Load(configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file:     %s", path)
			if !exists {
				fmt.Fprint(out, " (absent, defaults in effect)")
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Data directory:  %s\n", cfg.Paths.DataDir)
			fmt.Fprintf(out, "Catalog DB:      %s\n", cfg.CatalogDBPath())
			fmt.Fprintf(out, "API bind:        %s\n", cfg.Paths.APIBind)
			fmt.Fprintf(out, "Upstream:        %s (%s)\n", cfg.XCatalog.BaseURL, cfg.XCatalog.Country)
			fmt.Fprintf(out, "Default profile: %s\n", cfg.Matching.DefaultProfile)
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
