package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"carmatch/internal/api"
)

func newProfilesCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool
	var weightsFlag bool

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List registered weight profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			var resp api.ProfilesResponse
			if err := client.get(cmd.Context(), "/api/profiles", nil, &resp); err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd, resp)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]column{{title: "Profile"}, {title: "Max Score", numeric: true}},
				buildProfileRows(resp),
			))
			if weightsFlag {
				for _, p := range resp.Profiles {
					fmt.Fprintf(out, "\n%s weights:\n", p.Name)
					fmt.Fprintln(out, renderTable(
						[]column{{title: "Factor"}, {title: "Weight", numeric: true}},
						buildWeightRows(p.Weights),
					))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output JSON")
	cmd.Flags().BoolVarP(&weightsFlag, "weights", "w", false, "Show per-factor weights")
	return cmd
}
