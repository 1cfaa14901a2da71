package cli

import (
	"fmt"
	"text/tabwriter"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase"

	"github.com/spf13/cobra"
)

func newAuditRatesCmd(factory ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit-rates [order-id...]",
		Short: "Report billable amounts that drifted from the hourly rate",
		Long: `Recomputes every entry's amount at the order's hourly rate and lists the
ones whose stored amount differs by more than the tolerance. Without order
ids, every order in --status is audited. Nothing is rewritten.`,
	}
	cmd.Flags().String("status", string(entities.OrderStatusInProgress), "Order status to audit when no ids are given")
	cmd.Flags().Bool("strict", false, "Exit with an error when drift is found")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		strict, _ := cmd.Flags().GetBool("strict")

		return withServices(cmd, factory, func(s *Services) error {
			var drifts []usecase.RateDrift
			if len(args) > 0 {
				for _, id := range args {
					d, err := s.RateAudit.AuditOrder(cmd.Context(), id)
					if err != nil {
						return fmt.Errorf("audit %s: %w", id, err)
					}
					drifts = append(drifts, d...)
				}
			} else {
				d, err := s.RateAudit.AuditByStatus(cmd.Context(), entities.OrderStatus(status))
				if err != nil {
					return fmt.Errorf("audit status %s: %w", status, err)
				}
				drifts = d
			}

			out := cmd.OutOrStdout()
			if len(drifts) == 0 {
				fmt.Fprintln(out, "No drift found.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ORDER\tENTRY\tSTATUS\tHOURS\tRATE\tEXPECTED\tSTORED\tDELTA")
			for _, d := range drifts {
				entry := d.EntryID
				if entry == "" {
					entry = "(rate)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n", d.OrderID, entry, d.Status, d.Hours.String(), d.HourlyRate, d.Expected, d.Stored, d.Delta)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if strict {
				return fmt.Errorf("%d amounts drifted beyond tolerance", len(drifts))
			}
			return nil
		})
	}
	return cmd
}
