package prices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// userAgent mirrors a desktop browser; Yahoo rejects the default Go client string.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

const defaultBaseURL = "https://query1.finance.yahoo.com"

// ErrRateLimited signals the upstream answered with HTTP 429. Callers keep
// the cached price when they see it; it is an expected condition, not a fault.
var ErrRateLimited = errors.New("rate limited by quote source")

// Source provides a current spot price for a ticker symbol.
type Source interface {
	Spot(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// YahooSource implements Source using the Yahoo Finance chart API.
type YahooSource struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooSource creates a Yahoo Finance source with a bounded per-request timeout.
func NewYahooSource(timeout time.Duration) *YahooSource {
	return &YahooSource{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: defaultBaseURL,
	}
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice decimal.Decimal `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Spot fetches the latest regular market price for a symbol like "GC=F".
func (source *YahooSource) Spot(ctx context.Context, symbol string) (decimal.Decimal, error) {
	address := fmt.Sprintf(
		"%s/v8/finance/chart/%s?interval=1d&range=1d",
		source.BaseURL,
		url.PathEscape(symbol),
	)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)

	if err != nil {
		return decimal.Zero, err
	}

	request.Header.Set("User-Agent", userAgent)

	response, err := source.Client.Do(request)

	if err != nil {
		return decimal.Zero, fmt.Errorf("yahoo fetch: %w", err)
	}

	defer response.Body.Close()

	if response.StatusCode == http.StatusTooManyRequests {
		return decimal.Zero, ErrRateLimited
	}

	body, err := io.ReadAll(response.Body)

	if err != nil {
		return decimal.Zero, fmt.Errorf("yahoo read body: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("yahoo: status %d", response.StatusCode)
	}

	var chart yahooChart

	if err := json.Unmarshal(body, &chart); err != nil {
		return decimal.Zero, fmt.Errorf("yahoo decode: %w", err)
	}

	if chart.Chart.Error != nil {
		return decimal.Zero, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}

	if len(chart.Chart.Result) == 0 {
		return decimal.Zero, fmt.Errorf("yahoo: no data returned")
	}

	price := chart.Chart.Result[0].Meta.RegularMarketPrice

	// An absent or null price field decodes as zero, which is a bad
	// payload, not a price.
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("yahoo: no market price for %s", symbol)
	}

	return price, nil
}
