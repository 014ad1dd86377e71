package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	portssvc "github.com/SscSPs/car_rental_backend/internal/core/ports/services"
)

// eventProperties flattens an event into the attributes shared by logs and analytics.
func eventProperties(e domain.RentalEvent) map[string]any {
	r := e.EventRental()
	props := map[string]any{
		"rental_id":      r.RentalID,
		"car_id":         r.CarID,
		"client_id":      r.ClientID,
		"status":         string(r.Status),
		"total_cost":     r.TotalCost.String(),
		"deposit_amount": r.DepositAmount.String(),
		"penalty_amount": r.PenaltyAmount.String(),
	}
	switch ev := e.(type) {
	case domain.RentalCompletedEvent:
		props["late_fee"] = ev.LateFee.String()
		props["days_late"] = ev.DaysLate
		props["car_now_free"] = ev.CarNowFree
	case domain.RentalCancelledEvent:
		props["before_start"] = ev.BeforeStart
		props["car_now_free"] = ev.CarNowFree
	case domain.PenaltyAttachedEvent:
		props["penalty_id"] = ev.Penalty.PenaltyID
		props["penalty_kind"] = string(ev.Penalty.Kind)
		props["penalty"] = ev.Penalty.Amount.String()
	}
	return props
}

type loggingDispatcher struct {
	BaseService
}

// NewLoggingDispatcher returns a dispatcher that logs every event with the
// request-scoped logger.
func NewLoggingDispatcher() portssvc.EventDispatcher {
	return &loggingDispatcher{}
}

func (d *loggingDispatcher) Dispatch(ctx context.Context, e domain.RentalEvent) {
	props := eventProperties(e)
	attrs := make([]any, 0, len(props)+1)
	attrs = append(attrs, slog.String("event", e.EventName()))
	for k, v := range props {
		attrs = append(attrs, slog.Any(k, v))
	}
	d.LogInfo(ctx, "Rental event dispatched", attrs...)
}

// AnalyticsClient is the part of a product analytics client that events need.
type AnalyticsClient interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

type analyticsDispatcher struct {
	client AnalyticsClient
}

// NewAnalyticsDispatcher forwards events to a product analytics client,
// attributed to the user that triggered them.
func NewAnalyticsDispatcher(client AnalyticsClient) portssvc.EventDispatcher {
	return &analyticsDispatcher{client: client}
}

func (d *analyticsDispatcher) Dispatch(_ context.Context, e domain.RentalEvent) {
	r := e.EventRental()
	distinctID := r.LastUpdatedBy
	if distinctID == "" {
		distinctID = r.ClientID
	}
	d.client.Enqueue(distinctID, e.EventName(), eventProperties(e))
}

type multiDispatcher []portssvc.EventDispatcher

// NewMultiDispatcher fans an event out to every non-nil dispatcher in order.
func NewMultiDispatcher(dispatchers ...portssvc.EventDispatcher) portssvc.EventDispatcher {
	out := make(multiDispatcher, 0, len(dispatchers))
	for _, d := range dispatchers {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

func (m multiDispatcher) Dispatch(ctx context.Context, e domain.RentalEvent) {
	for _, d := range m {
		d.Dispatch(ctx, e)
	}
}
