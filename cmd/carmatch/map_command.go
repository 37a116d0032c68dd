package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"carmatch/internal/api"
)

func newMapCommand(ctx *commandContext) *cobra.Command {
	var scoreFlag int
	var maxScoreFlag int
	var classFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "map <source-code> <dest-code>",
		Short: "Submit a confirmed mapping upstream",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			req := api.MappingRequest{
				SourceCode:   args[0],
				DestCode:     args[1],
				Score:        scoreFlag,
				MaxScore:     maxScoreFlag,
				VehicleClass: classFlag,
			}
			var resp api.MappingResponse
			if err := client.post(cmd.Context(), "/api/mapping", req, &resp); err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd, resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Mapping %s -> %s submitted (normalized score %.4f)\n",
				args[0], args[1], resp.NormalizedScore)
			return nil
		},
	}

	cmd.Flags().IntVar(&scoreFlag, "score", 0, "Raw engine score for the pair")
	cmd.Flags().IntVar(&maxScoreFlag, "max-score", 0, "Profile max score used for normalization")
	cmd.Flags().StringVar(&classFlag, "class", "", "Vehicle class (CAR or LCV)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output JSON")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("max-score")
	return cmd
}
