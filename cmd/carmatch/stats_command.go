package main

import (
	"github.com/spf13/cobra"

	"carmatch/internal/api"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show daemon and catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			var resp api.StatsResponse
			if err := client.get(cmd.Context(), "/api/stats", nil, &resp); err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd, resp)
			}
			printStats(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output JSON")
	return cmd
}
