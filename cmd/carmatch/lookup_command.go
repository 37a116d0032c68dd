package main

import (
	"github.com/spf13/cobra"

	"carmatch/internal/api"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "lookup <natcode>",
		Short: "Show a catalog vehicle by natcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			var view api.VehicleView
			if err := client.get(cmd.Context(), "/api/eurotax/"+args[0], nil, &view); err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd, view)
			}
			printVehicle(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output JSON")
	return cmd
}
