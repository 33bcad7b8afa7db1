package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/event"
	"github.com/osse101/SwordForge_Go/mocks"
)

func TestEventMetricsCollector_ItemCrafted(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	before := testutil.ToFloat64(ItemsCrafted)
	rollsBefore := testutil.ToFloat64(AttributeRolls.WithLabelValues("mold", "Mythril"))

	item := &domain.RolledItem{
		ID:         "it-1",
		Attributes: map[string]string{"mold": "Mythril", "rarity": "Rare"},
		Value:      420,
	}
	require.NoError(t, bus.Publish(context.Background(), event.NewItemCraftedEvent(item)))

	assert.Equal(t, before+1, testutil.ToFloat64(ItemsCrafted))
	assert.Equal(t, rollsBefore+1, testutil.ToFloat64(AttributeRolls.WithLabelValues("mold", "Mythril")))
}

func TestEventMetricsCollector_SalesAndUpgrades(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	earned := testutil.ToFloat64(MoneyEarned)
	spent := testutil.ToFloat64(MoneySpent)
	auto := testutil.ToFloat64(ItemsSold.WithLabelValues(event.SourceCountdown))

	require.NoError(t, bus.Publish(ctx, event.NewItemSoldEvent("a", 25, true)))
	require.NoError(t, bus.Publish(ctx, event.NewUpgradePurchasedEvent("class", 7, 300)))
	require.NoError(t, bus.Publish(ctx, event.NewOptionRetiredEvent("class", "Regular", 7)))

	assert.Equal(t, earned+25, testutil.ToFloat64(MoneyEarned))
	assert.Equal(t, spent+300, testutil.ToFloat64(MoneySpent))
	assert.Equal(t, auto+1, testutil.ToFloat64(ItemsSold.WithLabelValues(event.SourceCountdown)))
	assert.Equal(t, 7.0, testutil.ToFloat64(UpgradeLevel.WithLabelValues("class")))
}

func TestEventMetricsCollector_BadPayloadIsIgnored(t *testing.T) {
	c := NewEventMetricsCollector()
	err := c.HandleEvent(context.Background(), event.Event{Type: event.ItemSold, Payload: "not a payload"})
	assert.NoError(t, err)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/odds/{category}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/odds/{category}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/odds/mold", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/odds/{category}", "418")))
}

func TestEventMetricsCollector_RegistersForgeEvents(t *testing.T) {
	bus := mocks.NewMockEventBus(t)
	for _, et := range []event.Type{event.ItemCrafted, event.ItemSold, event.UpgradePurchased, event.OptionRetired} {
		bus.On("Subscribe", et, mock.Anything).Return().Once()
	}

	NewEventMetricsCollector().Register(bus)
}
