package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadowWhisperer/MyStack/internal/logging"
	"github.com/ShadowWhisperer/MyStack/internal/prices"
)

type stubSource struct {
	prices map[string]string
	calls  int
}

func (source *stubSource) Spot(ctx context.Context, symbol string) (decimal.Decimal, error) {
	source.calls++

	value, ok := source.prices[symbol]

	if !ok {
		return decimal.Zero, errors.New("no data")
	}

	return decimal.RequireFromString(value), nil
}

func newTestService(source prices.Source) *prices.Service {
	return prices.NewService(
		source,
		prices.Config{
			Symbols: prices.DefaultSymbols,
			Fallbacks: map[prices.Metal]decimal.Decimal{
				prices.Gold:   decimal.RequireFromString("2050.00"),
				prices.Silver: decimal.RequireFromString("23.50"),
			},
		},
		logging.Silent(),
	)
}

func TestHandlePricesServesCachedSnapshot(t *testing.T) {
	source := &stubSource{}
	service := newTestService(source)

	request := httptest.NewRequest(http.MethodGet, "/api/prices", nil)
	recorder := httptest.NewRecorder()

	HandlePrices(service, recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(
		t,
		`{"prices": {"gold": 2050, "silver": 23.5}, "last_updated": null}`,
		recorder.Body.String(),
	)
	assert.Equal(t, 0, source.calls, "a plain read must not hit the network")
}

func TestHandlePricesRefreshRunsFetchCycle(t *testing.T) {
	source := &stubSource{
		prices: map[string]string{"GC=F": "2712.34", "SI=F": "31.88"},
	}
	service := newTestService(source)

	start := time.Now()
	request := httptest.NewRequest(http.MethodGet, "/api/prices?refresh=true", nil)
	recorder := httptest.NewRecorder()

	HandlePrices(service, recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 2, source.calls)
	assert.Contains(t, recorder.Body.String(), `"gold":2712.34`)
	assert.Contains(t, recorder.Body.String(), `"silver":31.88`)

	snapshot := service.Snapshot()
	assert.False(t, snapshot.LastUpdated.Before(start))
}

func TestHandlePricesRefreshFailureStillResponds(t *testing.T) {
	source := &stubSource{}
	service := newTestService(source)

	request := httptest.NewRequest(http.MethodGet, "/api/prices?refresh=true", nil)
	recorder := httptest.NewRecorder()

	HandlePrices(service, recorder, request)

	// Failed fetches keep the fallback prices; the endpoint never errors.
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"gold":2050`)
	assert.NotContains(t, recorder.Body.String(), `"last_updated":null`)
}
