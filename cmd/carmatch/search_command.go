package main

import (
	"net/url"

	"github.com/spf13/cobra"

	"carmatch/internal/api"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var profileFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "search <code>",
		Short: "Match a source trim code against the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			query := url.Values{}
			query.Set("code", args[0])
			if profileFlag != "" {
				query.Set("profile", profileFlag)
			}
			var result api.SearchResult
			if err := client.get(cmd.Context(), "/api/search", query, &result); err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd, result)
			}
			printSearchResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileFlag, "profile", "p", "", "Weight profile name")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output JSON")
	return cmd
}
