// Package cli implements billingctl, the operator tool for rate audits and
// manual replays of payment confirmations.
package cli

import (
	"context"
	"fmt"
	"os"

	"taskilo_billing/internal/app"
	"taskilo_billing/internal/config"
	"taskilo_billing/internal/usecase"

	"github.com/spf13/cobra"
)

// Services are the use cases the commands drive.
type Services struct {
	RateAudit  usecase.IRateAuditUseCase
	Reconciler usecase.IBillingReconciler
	Entries    usecase.ITimeEntryUseCase
	Close      func()
}

type ServiceFactory func(ctx context.Context) (*Services, error)

// NewRootCmd builds the command tree. Services are created lazily so --help
// never touches a backend.
func NewRootCmd(factory ServiceFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "billingctl",
		Short: "Operator tooling for the billing service",
		Long: `billingctl talks to the billing store directly, using the same
environment configuration as the API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAuditRatesCmd(factory))
	root.AddCommand(newReconcileCmd(factory))
	root.AddCommand(newSummaryCmd(factory))
	return root
}

// Execute runs billingctl against the configured backends.
func Execute(version string) error {
	root := NewRootCmd(func(ctx context.Context) (*Services, error) {
		c, err := app.Build(ctx, config.Load())
		if err != nil {
			return nil, err
		}
		return &Services{RateAudit: c.RateAudit, Reconciler: c.Reconciler, Entries: c.TimeEntries, Close: c.Close}, nil
	})
	root.Version = version
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func withServices(cmd *cobra.Command, factory ServiceFactory, fn func(s *Services) error) error {
	s, err := factory(cmd.Context())
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if s.Close != nil {
		defer s.Close()
	}
	return fn(s)
}
