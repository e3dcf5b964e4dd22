// Package prices maintains a cache of spot prices fetched from an external
// quote source.
package prices

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Metal identifies a tracked spot market.
type Metal string

const (
	Gold   Metal = "gold"
	Silver Metal = "silver"
)

// DefaultSymbols maps each metal to its Yahoo Finance futures ticker.
var DefaultSymbols = map[Metal]string{
	Gold:   "GC=F",
	Silver: "SI=F",
}

const (
	// DefaultTimeout bounds each upstream request.
	DefaultTimeout = 3 * time.Second
	// DefaultPacing spaces out the requests inside one refresh cycle so the
	// upstream doesn't throttle us.
	DefaultPacing = 500 * time.Millisecond
	// DefaultInterval is the gap between scheduled refresh cycles.
	DefaultInterval = 30 * time.Minute
)

// TimeFormat lays out cache timestamps for the prices API.
const TimeFormat = "2006-01-02 15:04:05"

// Result reports the outcome of fetching one metal inside a cycle.
type Result struct {
	Metal Metal
	Price decimal.Decimal
	Err   error
}

// Updated reports whether the fetch produced a fresh price. When it didn't,
// the cache keeps the previous price for the metal.
func (result Result) Updated() bool {
	return result.Err == nil
}

// Config seeds a Service with symbols and fallback prices.
type Config struct {
	// Symbols maps each tracked metal to an upstream ticker symbol.
	Symbols map[Metal]string
	// Fallbacks holds the price per metal to serve until a fetch succeeds.
	Fallbacks map[Metal]decimal.Decimal
	// Pacing is the delay between requests inside one cycle. Zero disables
	// the delay.
	Pacing time.Duration
}

// Service caches the latest known spot price for every configured metal.
//
// The cache is never empty: construction seeds the fallback prices, and a
// failed fetch keeps whatever price was already cached. Reads never touch
// the network.
type Service struct {
	source  Source
	logger  zerolog.Logger
	metals  []Metal
	symbols map[Metal]string
	pacing  time.Duration
	sleep   func(time.Duration)
	now     func() time.Time

	// fetchMutex serializes whole refresh cycles; mutex guards the cache
	// state so reads stay cheap while a cycle is on the network.
	fetchMutex  sync.Mutex
	mutex       sync.RWMutex
	prices      map[Metal]decimal.Decimal
	lastUpdated time.Time
}

// NewService creates a price cache seeded with the configured fallback prices.
func NewService(source Source, config Config, logger zerolog.Logger) *Service {
	metals := make([]Metal, 0, len(config.Symbols))
	prices := make(map[Metal]decimal.Decimal, len(config.Symbols))

	for metal := range config.Symbols {
		metals = append(metals, metal)
		prices[metal] = config.Fallbacks[metal]
	}

	sort.Slice(metals, func(i, j int) bool {
		return metals[i] < metals[j]
	})

	return &Service{
		source:  source,
		logger:  logger,
		metals:  metals,
		symbols: config.Symbols,
		pacing:  config.Pacing,
		sleep:   time.Sleep,
		now:     time.Now,
		prices:  prices,
	}
}

// fetch asks the source for one metal's price and folds the outcome into a
// Result. Errors never escape past FetchAll.
func (service *Service) fetch(ctx context.Context, metal Metal) Result {
	price, err := service.source.Spot(ctx, service.symbols[metal])

	if err != nil {
		return Result{Metal: metal, Err: err}
	}

	return Result{Metal: metal, Price: price.Round(2)}
}

// FetchAll runs one refresh cycle, fetching every configured metal in turn.
//
// Requests inside a cycle are strictly sequential with a pacing delay
// between them; the delay is a throttle agreed with the upstream rate
// limit, so the cycle must not be parallelized. Each metal updates or keeps
// its cached price independently, and the last updated time advances when
// the cycle completes whether or not any fetch succeeded. Cycles exclude
// each other: a scheduled run and a manual refresh cannot interleave.
func (service *Service) FetchAll(ctx context.Context) Snapshot {
	service.fetchMutex.Lock()
	defer service.fetchMutex.Unlock()

	for i, metal := range service.metals {
		if i > 0 && service.pacing > 0 {
			service.sleep(service.pacing)
		}

		result := service.fetch(ctx, metal)

		if result.Updated() {
			service.mutex.Lock()
			service.prices[metal] = result.Price
			service.mutex.Unlock()

			service.logger.Debug().
				Str("metal", string(metal)).
				Str("price", result.Price.String()).
				Msg("spot price updated")
		} else if errors.Is(result.Err, ErrRateLimited) {
			service.logger.Info().
				Str("metal", string(metal)).
				Msg("rate limited, keeping cached price")
		} else {
			service.logger.Error().
				Err(result.Err).
				Str("metal", string(metal)).
				Msg("price fetch failed, keeping cached price")
		}
	}

	service.mutex.Lock()
	service.lastUpdated = service.now()
	service.mutex.Unlock()

	return service.Snapshot()
}

// Price returns the cached price for a metal, and false for metals the
// cache was never configured with. Reading never triggers a fetch.
func (service *Service) Price(metal Metal) (decimal.Decimal, bool) {
	service.mutex.RLock()
	defer service.mutex.RUnlock()

	price, ok := service.prices[metal]

	return price, ok
}

// Snapshot returns a copy of every cached price and the last cycle time.
// Safe to call while a cycle is running.
func (service *Service) Snapshot() Snapshot {
	service.mutex.RLock()
	defer service.mutex.RUnlock()

	prices := make(map[Metal]decimal.Decimal, len(service.prices))

	for metal, price := range service.prices {
		prices[metal] = price
	}

	return Snapshot{Prices: prices, LastUpdated: service.lastUpdated}
}

// Snapshot is a point-in-time copy of the cache. A zero LastUpdated means
// no fetch cycle has completed yet.
type Snapshot struct {
	Prices      map[Metal]decimal.Decimal
	LastUpdated time.Time
}

// MarshalJSON serializes a snapshot for the prices API, with prices as
// plain numbers and a null timestamp before the first completed cycle.
func (snapshot Snapshot) MarshalJSON() ([]byte, error) {
	prices := make(map[Metal]float64, len(snapshot.Prices))

	for metal, price := range snapshot.Prices {
		prices[metal], _ = price.Float64()
	}

	var lastUpdated *string

	if !snapshot.LastUpdated.IsZero() {
		formatted := snapshot.LastUpdated.Format(TimeFormat)
		lastUpdated = &formatted
	}

	return json.Marshal(struct {
		Prices      map[Metal]float64 `json:"prices"`
		LastUpdated *string           `json:"last_updated"`
	}{prices, lastUpdated})
}
