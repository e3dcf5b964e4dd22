// Package goldback defines routes for Goldback notes
package goldback

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/ShadowWhisperer/MyStack/internal/database"
	"github.com/ShadowWhisperer/MyStack/internal/model"
	"github.com/ShadowWhisperer/MyStack/internal/prices"
	"github.com/ShadowWhisperer/MyStack/internal/route/query"
	"github.com/ShadowWhisperer/MyStack/internal/route/util"
	"github.com/ShadowWhisperer/MyStack/internal/template"
	"github.com/ShadowWhisperer/MyStack/internal/valuation"
)

// Row is a Goldback stack with its live worth and display strings.
//
// Worth is computed from the cached gold spot price on every render; it is
// never read from the database.
type Row struct {
	model.Goldback
	DenominationDisplay string
	UnitsDisplay        string
	WorthDisplay        string
	CostDisplay         string
	GainLoss            string
	GainLossPercent     string
}

func buildRow(goldback model.Goldback, goldPrice decimal.Decimal) Row {
	worth := valuation.GoldbackWorth(goldback.Denomination, goldback.Count, goldPrice)

	return Row{
		Goldback:            goldback,
		DenominationDisplay: valuation.FormatDenomination(goldback.Denomination),
		UnitsDisplay:        valuation.FormatAmount(valuation.GoldbackUnits(goldback.Denomination, goldback.Count)),
		WorthDisplay:        valuation.FormatAmount(worth),
		CostDisplay:         valuation.FormatAmount(goldback.Cost),
		GainLoss:            valuation.FormatAmount(valuation.GainLoss(worth, goldback.Cost)),
		GainLossPercent:     valuation.FormatAmount(valuation.GainLossPercent(worth, goldback.Cost)),
	}
}

type GoldbackPageData struct {
	User     model.User
	Goldback model.Goldback
}

type GoldbackListPageData struct {
	GoldbackPageData
	GoldbackList []Row
	GoldbackRate string
}

func HandleGoldbackList(conn *database.Conn, service *prices.Service, writer http.ResponseWriter, request *http.Request) {
	data := GoldbackListPageData{}

	if !util.RequireUser(conn, writer, request, &data.User) {
		return
	}

	var goldbackList []model.Goldback

	if err := query.LoadGoldbackList(conn, data.User.ID, &goldbackList); err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	goldPrice, _ := service.Price(prices.Gold)

	data.GoldbackList = make([]Row, 0, len(goldbackList))

	for _, goldback := range goldbackList {
		data.GoldbackList = append(data.GoldbackList, buildRow(goldback, goldPrice))
	}

	data.GoldbackRate = valuation.FormatAmount(
		valuation.GoldbackWorth(decimal.NewFromInt(1), 1, goldPrice),
	)

	template.Render(template.GoldbackList, writer, data)
}

func loadGoldbackForRequest(
	conn *database.Conn,
	writer http.ResponseWriter,
	request *http.Request,
	user *model.User,
	goldback *model.Goldback,
) bool {
	goldbackID, err := strconv.Atoi(mux.Vars(request)["id"])

	if err != nil {
		util.RespondNotFound(writer)

		return false
	}

	if err := query.LoadGoldbackByID(conn, goldback, user.ID, goldbackID); err != nil {
		if err == database.ErrNoRows {
			util.RespondNotFound(writer)
		} else {
			util.RespondInternalServerError(writer, err)
		}

		return false
	}

	return true
}

func HandleGoldback(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := GoldbackPageData{}

	if !util.RequireUser(conn, writer, request, &data.User) {
		return
	}

	if loadGoldbackForRequest(conn, writer, request, &data.User, &data.Goldback) {
		template.Render(template.Goldback, writer, data)
	}
}

func loadGoldbackFromForm(writer http.ResponseWriter, request *http.Request, goldback *model.Goldback) bool {
	request.ParseForm()

	denomination, err := decimal.NewFromString(request.Form.Get("denomination"))

	if err != nil || !denomination.IsPositive() {
		util.RespondValidationError(writer, "Invalid denomination")

		return false
	}

	count, err := strconv.Atoi(request.Form.Get("count"))

	if err != nil || count < 1 {
		util.RespondValidationError(writer, "Invalid count")

		return false
	}

	cost, err := decimal.NewFromString(request.Form.Get("cost"))

	if err != nil || cost.IsNegative() {
		util.RespondValidationError(writer, "Invalid cost")

		return false
	}

	goldback.Denomination = denomination
	goldback.Count = count
	goldback.Cost = cost
	goldback.Notes = strings.TrimSpace(request.Form.Get("notes"))

	return true
}

func HandleSubmitGoldback(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	var user model.User
	var goldback model.Goldback

	if !util.RequireFormUser(conn, writer, request, &user) {
		return
	}

	if loadGoldbackFromForm(writer, request, &goldback) {
		insertSQL := `
		insert into stack_goldback(user_id, denomination, count, cost, notes)
		values ($1, $2, $3, $4, $5)
		`

		err := conn.Exec(
			insertSQL,
			user.ID,
			goldback.Denomination,
			goldback.Count,
			goldback.Cost,
			goldback.Notes,
		)

		if err != nil {
			util.RespondInternalServerError(writer, err)
		} else {
			http.Redirect(writer, request, "/goldbacks", http.StatusFound)
		}
	}
}

func HandleUpdateGoldback(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	var user model.User
	var goldback model.Goldback

	if !util.RequireFormUser(conn, writer, request, &user) {
		return
	}

	if loadGoldbackForRequest(conn, writer, request, &user, &goldback) && loadGoldbackFromForm(writer, request, &goldback) {
		updateSQL := `
		update stack_goldback
		set denomination = $2,
			count = $3,
			cost = $4,
			notes = $5
		where id = $1
		`

		err := conn.Exec(
			updateSQL,
			goldback.ID,
			goldback.Denomination,
			goldback.Count,
			goldback.Cost,
			goldback.Notes,
		)

		if err != nil {
			util.RespondInternalServerError(writer, err)
		} else {
			http.Redirect(writer, request, "/goldbacks", http.StatusFound)
		}
	}
}

func HandleDeleteGoldback(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	var user model.User
	var goldback model.Goldback

	if !util.RequireFormUser(conn, writer, request, &user) {
		return
	}

	if loadGoldbackForRequest(conn, writer, request, &user, &goldback) {
		if err := conn.Exec("delete from stack_goldback where id = $1", goldback.ID); err != nil {
			util.RespondInternalServerError(writer, err)
		} else {
			writer.WriteHeader(http.StatusNoContent)
		}
	}
}
