// Package dashboard defines the route for the aggregate holdings overview
package dashboard

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ShadowWhisperer/MyStack/internal/database"
	"github.com/ShadowWhisperer/MyStack/internal/model"
	"github.com/ShadowWhisperer/MyStack/internal/prices"
	"github.com/ShadowWhisperer/MyStack/internal/route/query"
	"github.com/ShadowWhisperer/MyStack/internal/route/util"
	"github.com/ShadowWhisperer/MyStack/internal/template"
	"github.com/ShadowWhisperer/MyStack/internal/valuation"
)

// Stats holds the display totals for one holding category.
type Stats struct {
	Count           int
	Value           string
	Cost            string
	GainLoss        string
	GainLossPercent string
	Loss            bool
}

func buildStats(count int, value decimal.Decimal, cost decimal.Decimal) Stats {
	gainLoss := valuation.GainLoss(value, cost)

	return Stats{
		Count:           count,
		Value:           valuation.FormatAmount(value),
		Cost:            valuation.FormatAmount(cost),
		GainLoss:        valuation.FormatAmount(gainLoss),
		GainLossPercent: valuation.FormatAmount(valuation.GainLossPercent(value, cost)),
		Loss:            gainLoss.IsNegative(),
	}
}

// Summary aggregates every holding category for the dashboard.
//
// Metal and coin values are the stored figures their owners maintain by
// hand; Goldback worth is derived from the cached gold price at render time.
type Summary struct {
	Metals        Stats
	Coins         Stats
	Goldbacks     Stats
	GoldbackUnits string
	Combined      Stats
}

func buildSummary(
	metalList []model.Metal,
	coinList []model.Coin,
	goldbackList []model.Goldback,
	goldPrice decimal.Decimal,
) Summary {
	metalValue := decimal.Zero
	metalCost := decimal.Zero

	for _, metal := range metalList {
		metalValue = metalValue.Add(metal.CurrentValue)
		metalCost = metalCost.Add(metal.Cost)
	}

	coinValue := decimal.Zero
	coinCost := decimal.Zero

	for _, coin := range coinList {
		coinValue = coinValue.Add(coin.Worth)
		coinCost = coinCost.Add(coin.Cost)
	}

	goldbackValue := decimal.Zero
	goldbackCost := decimal.Zero
	goldbackUnits := decimal.Zero

	for _, goldback := range goldbackList {
		goldbackValue = goldbackValue.Add(
			valuation.GoldbackWorth(goldback.Denomination, goldback.Count, goldPrice),
		)
		goldbackCost = goldbackCost.Add(goldback.Cost)
		goldbackUnits = goldbackUnits.Add(
			valuation.GoldbackUnits(goldback.Denomination, goldback.Count),
		)
	}

	return Summary{
		Metals:        buildStats(len(metalList), metalValue, metalCost),
		Coins:         buildStats(len(coinList), coinValue, coinCost),
		Goldbacks:     buildStats(len(goldbackList), goldbackValue, goldbackCost),
		GoldbackUnits: valuation.FormatAmount(goldbackUnits),
		Combined: buildStats(
			len(metalList)+len(coinList)+len(goldbackList),
			metalValue.Add(coinValue).Add(goldbackValue),
			metalCost.Add(coinCost).Add(goldbackCost),
		),
	}
}

type DashboardPageData struct {
	User         model.User
	Summary      Summary
	GoldPrice    string
	SilverPrice  string
	GoldbackRate string
	LastUpdated  string
}

func HandleDashboard(conn *database.Conn, service *prices.Service, writer http.ResponseWriter, request *http.Request) {
	data := DashboardPageData{}

	if !util.RequireUser(conn, writer, request, &data.User) {
		return
	}

	var metalList []model.Metal

	if err := query.LoadMetalList(conn, data.User.ID, &metalList); err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	var coinList []model.Coin

	if err := query.LoadCoinList(conn, data.User.ID, &coinList); err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	var goldbackList []model.Goldback

	if err := query.LoadGoldbackList(conn, data.User.ID, &goldbackList); err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	snapshot := service.Snapshot()
	goldPrice := snapshot.Prices[prices.Gold]

	data.Summary = buildSummary(metalList, coinList, goldbackList, goldPrice)
	data.GoldPrice = valuation.FormatAmount(goldPrice)
	data.SilverPrice = valuation.FormatAmount(snapshot.Prices[prices.Silver])
	data.GoldbackRate = valuation.FormatAmount(
		valuation.GoldbackWorth(decimal.NewFromInt(1), 1, goldPrice),
	)

	if !snapshot.LastUpdated.IsZero() {
		data.LastUpdated = snapshot.LastUpdated.Format(prices.TimeFormat)
	}

	template.Render(template.Dashboard, writer, data)
}
