package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newSummaryCmd(factory ServiceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <order-id>",
		Short: "Print the billing summary of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, factory, func(s *Services) error {
				sum, err := s.Entries.Summary(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			})
		},
	}
}
