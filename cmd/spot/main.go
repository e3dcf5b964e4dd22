// Print the current spot prices for the tracked metals.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ShadowWhisperer/MyStack/internal/prices"
)

func main() {
	source := prices.NewYahooSource(prices.DefaultTimeout)
	failed := false

	for i, metal := range []prices.Metal{prices.Gold, prices.Silver} {
		if i > 0 {
			time.Sleep(prices.DefaultPacing)
		}

		price, err := source.Spot(context.Background(), prices.DefaultSymbols[metal])

		if errors.Is(err, prices.ErrRateLimited) {
			fmt.Fprintf(os.Stderr, "%s: rate limited\n", metal)
			failed = true

			continue
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", metal, err)
			failed = true

			continue
		}

		fmt.Printf("%s: %s\n", metal, price.Round(2))
	}

	if failed {
		os.Exit(1)
	}
}
