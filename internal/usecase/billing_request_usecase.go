package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

type CaptureInput struct {
	EntryIDs        []string
	PayerEmail      string
	PaymentMethodID string
}

// IBillingRequestUseCase sends logged, customer-approved hours to the payment
// provider for capture and marks them billing_pending under the returned
// reference.
type IBillingRequestUseCase interface {
	RequestCapture(ctx context.Context, orderID string, in CaptureInput) (entities.CaptureResult, error)
}

type BillingRequestUseCase struct {
	repo        interfaces.IOrderRepository
	gateway     interfaces.IPaymentGateway
	feeBps      int64
	maxAttempts int
	now         func() time.Time
}

var _ IBillingRequestUseCase = (*BillingRequestUseCase)(nil)

func NewBillingRequestUseCase(repo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, platformFeeBps int64, maxAttempts int) *BillingRequestUseCase {
	return &BillingRequestUseCase{repo: repo, gateway: gateway, feeBps: platformFeeBps, maxAttempts: maxAttempts, now: time.Now}
}

func (u *BillingRequestUseCase) RequestCapture(ctx context.Context, orderID string, in CaptureInput) (entities.CaptureResult, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[billing][capture] start order_id=%s entries=%d", orderID, len(in.EntryIDs))
	if orderID == "" {
		return entities.CaptureResult{}, ErrInvalidOrderID
	}
	ids, err := normalizeEntryIDs(in.EntryIDs)
	if err != nil {
		return entities.CaptureResult{}, err
	}
	if u.gateway == nil {
		log.Printf("[billing][capture] gateway not configured order_id=%s", orderID)
		return entities.CaptureResult{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.CaptureResult{}, err
	}
	if order.ID == "" {
		return entities.CaptureResult{}, ErrOrderNotFound
	}
	if order.TimeTracking == nil {
		return entities.CaptureResult{}, ErrTimeTrackingNotInitialized
	}
	amount, err := approvedAmount(order.TimeTracking, ids)
	if err != nil {
		return entities.CaptureResult{}, err
	}

	req := entities.CaptureRequest{
		OrderID:         order.ID,
		EntryIDs:        ids,
		Amount:          amount,
		PlatformFee:     platformFee(amount, u.feeBps),
		Currency:        order.Currency,
		Description:     fmt.Sprintf("Additional hours for order %s", order.ID),
		PayerEmail:      strings.TrimSpace(in.PayerEmail),
		PaymentMethodID: strings.TrimSpace(in.PaymentMethodID),
	}
	log.Printf("[billing][capture] calling gateway provider=%s order_id=%s amount=%d fee=%d", u.gateway.Provider(), order.ID, req.Amount, req.PlatformFee)
	res, err := u.gateway.CreateCapture(ctx, req)
	if err != nil {
		log.Printf("[billing][capture] gateway failed order_id=%s err=%v", order.ID, err)
		return entities.CaptureResult{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	if strings.TrimSpace(res.Reference) == "" {
		return entities.CaptureResult{}, fmt.Errorf("%w: provider returned no payment reference", ErrPaymentGateway)
	}

	_, err = mutateOrder(ctx, u.repo, order.ID, u.maxAttempts, func(o *entities.Order) error {
		if o.TimeTracking == nil {
			return ErrTimeTrackingNotInitialized
		}
		now := u.now().UTC()
		for _, id := range ids {
			idx := o.TimeTracking.EntryIndex(id)
			if idx < 0 {
				return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
			}
			if err := o.TimeTracking.Entries[idx].Transition(entities.EntryStatusBillingPending, res.Reference, now); err != nil {
				return err
			}
		}
		o.TimeTracking.Recompute(now)
		return nil
	})
	if err != nil {
		// The provider already holds a payment for these entries; it needs a
		// manual void or a replayed status update.
		log.Printf("[billing][capture] ERROR payment created but entries not marked order_id=%s ref=%s err=%v", order.ID, res.Reference, err)
		return entities.CaptureResult{}, err
	}

	res.Amount = amount
	res.Currency = order.Currency
	res.EntryIDs = ids
	if res.Provider == "" {
		res.Provider = u.gateway.Provider()
	}
	log.Printf("[billing][capture] success order_id=%s ref=%s status=%s amount=%d", order.ID, res.Reference, res.Status, amount)
	return res, nil
}

func normalizeEntryIDs(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: at least one entry id is required", ErrValidation)
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, id := range raw {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("%w: empty entry id", ErrValidation)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate entry id %s", ErrValidation, id)
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func approvedAmount(tt *entities.TimeTracking, ids []string) (int64, error) {
	var total int64
	for _, id := range ids {
		idx := tt.EntryIndex(id)
		if idx < 0 {
			return 0, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
		}
		e := tt.Entries[idx]
		if e.Status != entities.EntryStatusLogged {
			return 0, fmt.Errorf("%w: entry %s is %s, only logged entries can be billed", ErrInvalidTransition, id, e.Status)
		}
		if st := e.ApprovalState(); st != entities.ApprovalApproved {
			return 0, fmt.Errorf("%w: entry %s is %s, only customer-approved entries can be billed", ErrApprovalState, id, st)
		}
		if err := e.Validate(); err != nil {
			return 0, err
		}
		total += e.BillableAmount
	}
	if total <= 0 {
		return 0, fmt.Errorf("%w: nothing to bill for entries %v", ErrValidation, ids)
	}
	return total, nil
}

// platformFee is amount * bps / 10000, rounded half-up.
func platformFee(amount, bps int64) int64 {
	if bps <= 0 || amount <= 0 {
		return 0
	}
	return decimal.NewFromInt(amount).Mul(decimal.NewFromInt(bps)).Div(decimal.NewFromInt(10000)).Round(0).IntPart()
}
