// Package metal defines routes for bulk metal holdings
package metal

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/ShadowWhisperer/MyStack/internal/database"
	"github.com/ShadowWhisperer/MyStack/internal/model"
	"github.com/ShadowWhisperer/MyStack/internal/route/query"
	"github.com/ShadowWhisperer/MyStack/internal/route/util"
	"github.com/ShadowWhisperer/MyStack/internal/template"
	"github.com/ShadowWhisperer/MyStack/internal/valuation"
)

var one = decimal.NewFromInt(1)

// Row is a Metal with the display strings the list page renders.
type Row struct {
	model.Metal
	WeightDisplay   string
	CostDisplay     string
	ValueDisplay    string
	GainLoss        string
	GainLossPercent string
}

func buildRow(metal model.Metal) Row {
	return Row{
		Metal:           metal,
		WeightDisplay:   valuation.FormatWeight(metal.Weight),
		CostDisplay:     valuation.FormatAmount(metal.Cost),
		ValueDisplay:    valuation.FormatAmount(metal.CurrentValue),
		GainLoss:        valuation.FormatAmount(valuation.GainLoss(metal.CurrentValue, metal.Cost)),
		GainLossPercent: valuation.FormatAmount(valuation.GainLossPercent(metal.CurrentValue, metal.Cost)),
	}
}

type MetalPageData struct {
	User  model.User
	Metal model.Metal
	Types []string
}

type MetalListPageData struct {
	MetalPageData
	MetalList []Row
}

func HandleMetalList(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := MetalListPageData{}
	data.Types = model.MetalTypes

	if !util.RequireUser(conn, writer, request, &data.User) {
		return
	}

	var metalList []model.Metal

	if err := query.LoadMetalList(conn, data.User.ID, &metalList); err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	data.MetalList = make([]Row, 0, len(metalList))

	for _, metal := range metalList {
		data.MetalList = append(data.MetalList, buildRow(metal))
	}

	template.Render(template.MetalList, writer, data)
}

func loadMetalForRequest(
	conn *database.Conn,
	writer http.ResponseWriter,
	request *http.Request,
	user *model.User,
	metal *model.Metal,
) bool {
	metalID, err := strconv.Atoi(mux.Vars(request)["id"])

	if err != nil {
		util.RespondNotFound(writer)

		return false
	}

	if err := query.LoadMetalByID(conn, metal, user.ID, metalID); err != nil {
		if err == database.ErrNoRows {
			util.RespondNotFound(writer)
		} else {
			util.RespondInternalServerError(writer, err)
		}

		return false
	}

	return true
}

func HandleMetal(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := MetalPageData{}
	data.Types = model.MetalTypes

	if !util.RequireUser(conn, writer, request, &data.User) {
		return
	}

	if loadMetalForRequest(conn, writer, request, &data.User, &data.Metal) {
		template.Render(template.Metal, writer, data)
	}
}

func isMetalType(value string) bool {
	for _, metalType := range model.MetalTypes {
		if value == metalType {
			return true
		}
	}

	return false
}

func loadMetalFromForm(writer http.ResponseWriter, request *http.Request, metal *model.Metal) bool {
	request.ParseForm()

	metal.Name = strings.TrimSpace(request.Form.Get("name"))

	if len(metal.Name) == 0 {
		util.RespondValidationError(writer, "Name is required")

		return false
	}

	metal.Type = request.Form.Get("type")

	if !isMetalType(metal.Type) {
		util.RespondValidationError(writer, "Invalid metal type")

		return false
	}

	weight, err := decimal.NewFromString(request.Form.Get("weight"))

	if err != nil || !weight.IsPositive() {
		util.RespondValidationError(writer, "Invalid weight")

		return false
	}

	purity, err := decimal.NewFromString(request.Form.Get("purity"))

	if err != nil || !purity.IsPositive() || purity.GreaterThan(one) {
		util.RespondValidationError(writer, "Purity must be between 0 and 1")

		return false
	}

	cost, err := decimal.NewFromString(request.Form.Get("cost"))

	if err != nil || cost.IsNegative() {
		util.RespondValidationError(writer, "Invalid cost")

		return false
	}

	currentValue, err := decimal.NewFromString(request.Form.Get("current_value"))

	if err != nil || currentValue.IsNegative() {
		util.RespondValidationError(writer, "Invalid current value")

		return false
	}

	metal.Weight = weight
	metal.Purity = purity
	metal.Cost = cost
	metal.CurrentValue = currentValue
	metal.Notes = strings.TrimSpace(request.Form.Get("notes"))

	return true
}

func HandleSubmitMetal(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	var user model.User
	var metal model.Metal

	if !util.RequireFormUser(conn, writer, request, &user) {
		return
	}

	if loadMetalFromForm(writer, request, &metal) {
		insertSQL := `
		insert into stack_metal(user_id, name, type, weight, purity, cost, current_value, notes)
		values ($1, $2, $3, $4, $5, $6, $7, $8)
		`

		err := conn.Exec(
			insertSQL,
			user.ID,
			metal.Name,
			metal.Type,
			metal.Weight,
			metal.Purity,
			metal.Cost,
			metal.CurrentValue,
			metal.Notes,
		)

		if err != nil {
			util.RespondInternalServerError(writer, err)
		} else {
			http.Redirect(writer, request, "/metals", http.StatusFound)
		}
	}
}

func HandleUpdateMetal(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	var user model.User
	var metal model.Metal

	if !util.RequireFormUser(conn, writer, request, &user) {
		return
	}

	if loadMetalForRequest(conn, writer, request, &user, &metal) && loadMetalFromForm(writer, request, &metal) {
		updateSQL := `
		update stack_metal
		set name = $2,
			type = $3,
			weight = $4,
			purity = $5,
			cost = $6,
			current_value = $7,
			notes = $8
		where id = $1
		`

		err := conn.Exec(
			updateSQL,
			metal.ID,
			metal.Name,
			metal.Type,
			metal.Weight,
			metal.Purity,
			metal.Cost,
			metal.CurrentValue,
			metal.Notes,
		)

		if err != nil {
			util.RespondInternalServerError(writer, err)
		} else {
			http.Redirect(writer, request, "/metals", http.StatusFound)
		}
	}
}

func HandleDeleteMetal(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	var user model.User
	var metal model.Metal

	if !util.RequireFormUser(conn, writer, request, &user) {
		return
	}

	if loadMetalForRequest(conn, writer, request, &user, &metal) {
		if err := conn.Exec("delete from stack_metal where id = $1", metal.ID); err != nil {
			util.RespondInternalServerError(writer, err)
		} else {
			writer.WriteHeader(http.StatusNoContent)
		}
	}
}
