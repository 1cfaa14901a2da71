package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"taskilo_billing/internal/domain/entities"

	"github.com/spf13/cobra"
)

const manualProvider = "manual"

func newReconcileCmd(factory ServiceFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Replay a payment confirmation",
		Long: `Applies a confirmation exactly as a webhook would, for example after
reviewing a rejected delivery. Replaying the same provider and event id
twice is a no-op.`,
	}
	cmd.Flags().String("provider", manualProvider, "Provider that issued the event")
	cmd.Flags().String("event-id", "", "Provider event id (required)")
	cmd.Flags().String("order", "", "Order id (required)")
	cmd.Flags().String("ref", "", "Payment reference (required)")
	cmd.Flags().String("type", "", "held, settled or disputed (required)")
	cmd.Flags().Int64("amount", 0, "Confirmed amount in minor units")
	for _, f := range []string{"event-id", "order", "ref", "type"} {
		_ = cmd.MarkFlagRequired(f)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		provider, _ := cmd.Flags().GetString("provider")
		eventID, _ := cmd.Flags().GetString("event-id")
		orderID, _ := cmd.Flags().GetString("order")
		ref, _ := cmd.Flags().GetString("ref")
		rawType, _ := cmd.Flags().GetString("type")
		amount, _ := cmd.Flags().GetInt64("amount")

		typ, ok := parseEventType(rawType)
		if !ok {
			return fmt.Errorf("unknown event type %q", rawType)
		}
		ev := entities.BillingEvent{
			ExternalID:       eventID,
			Provider:         provider,
			OrderID:          orderID,
			PaymentReference: ref,
			Amount:           amount,
			Type:             typ,
			ReceivedAt:       time.Now().UTC(),
		}

		return withServices(cmd, factory, func(s *Services) error {
			res, err := s.Reconciler.Reconcile(cmd.Context(), ev)
			if err != nil {
				return fmt.Errorf("reconcile %s: %w", ev.Key(), err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		})
	}
	return cmd
}

func parseEventType(raw string) (entities.EventType, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw != "" && !strings.HasPrefix(raw, "payment.") {
		raw = "payment." + raw
	}
	return entities.ParseEventType(raw)
}
