package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/SscSPs/car_rental_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEvent struct {
	distinctID string
	event      string
	properties map[string]any
}

type fakeAnalytics struct {
	events []capturedEvent
}

func (f *fakeAnalytics) Enqueue(distinctID string, event string, properties map[string]any) {
	f.events = append(f.events, capturedEvent{distinctID, event, properties})
}

func TestAnalyticsDispatcher(t *testing.T) {
	analytics := &fakeAnalytics{}
	recorder := &recordingDispatcher{}
	d := services.NewMultiDispatcher(services.NewLoggingDispatcher(), nil, services.NewAnalyticsDispatcher(analytics), recorder)

	rental := domain.Rental{RentalID: "r-1", CarID: "car-1", ClientID: "client-1", Status: domain.RentalCompleted}
	rental.LastUpdatedBy = "clerk-1"
	d.Dispatch(context.Background(), domain.RentalCompletedEvent{Rental: rental, LateFee: dec("500"), DaysLate: 1, CarNowFree: true})

	require.Len(t, analytics.events, 1)
	got := analytics.events[0]
	assert.Equal(t, "clerk-1", got.distinctID)
	assert.Equal(t, domain.EventRentalCompleted, got.event)
	assert.Equal(t, "r-1", got.properties["rental_id"])
	assert.Equal(t, "500", got.properties["late_fee"])
	assert.Equal(t, true, got.properties["car_now_free"])
	assert.Len(t, recorder.Events(), 1)
}

func TestAnalyticsDispatcher_FallsBackToClient(t *testing.T) {
	analytics := &fakeAnalytics{}
	d := services.NewAnalyticsDispatcher(analytics)

	penalty := domain.Penalty{PenaltyID: "p-1", Kind: domain.PenaltyManual, Amount: dec("20")}
	d.Dispatch(context.Background(), domain.PenaltyAttachedEvent{Rental: domain.Rental{ClientID: "client-9"}, Penalty: penalty})

	require.Len(t, analytics.events, 1)
	assert.Equal(t, "client-9", analytics.events[0].distinctID)
	assert.Equal(t, "MANUAL", analytics.events[0].properties["penalty_kind"])
}
