// Package coin defines routes for collectible coins
package coin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/ShadowWhisperer/MyStack/internal/database"
	"github.com/ShadowWhisperer/MyStack/internal/model"
	"github.com/ShadowWhisperer/MyStack/internal/route/query"
	"github.com/ShadowWhisperer/MyStack/internal/route/util"
	"github.com/ShadowWhisperer/MyStack/internal/template"
	"github.com/ShadowWhisperer/MyStack/internal/upload"
	"github.com/ShadowWhisperer/MyStack/internal/valuation"
)

// maxImageBytes caps how much of an image upload is held in memory.
const maxImageBytes = 10 << 20

// Row is a Coin with the display strings the list page renders.
type Row struct {
	model.Coin
	WorthDisplay    string
	CostDisplay     string
	GainLoss        string
	GainLossPercent string
}

func buildRow(coin model.Coin) Row {
	return Row{
		Coin:            coin,
		WorthDisplay:    valuation.FormatAmount(coin.Worth),
		CostDisplay:     valuation.FormatAmount(coin.Cost),
		GainLoss:        valuation.FormatAmount(valuation.GainLoss(coin.Worth, coin.Cost)),
		GainLossPercent: valuation.FormatAmount(valuation.GainLossPercent(coin.Worth, coin.Cost)),
	}
}

type CoinPageData struct {
	User      model.User
	Coin      model.Coin
	Materials []string
}

type CoinListPageData struct {
	CoinPageData
	CoinList []Row
}

func HandleCoinList(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := CoinListPageData{}
	data.Materials = model.CoinMaterials

	if !util.RequireUser(conn, writer, request, &data.User) {
		return
	}

	var coinList []model.Coin

	if err := query.LoadCoinList(conn, data.User.ID, &coinList); err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	data.CoinList = make([]Row, 0, len(coinList))

	for _, coin := range coinList {
		data.CoinList = append(data.CoinList, buildRow(coin))
	}

	template.Render(template.CoinList, writer, data)
}

func loadCoinForRequest(
	conn *database.Conn,
	writer http.ResponseWriter,
	request *http.Request,
	user *model.User,
	coin *model.Coin,
) bool {
	coinID, err := strconv.Atoi(mux.Vars(request)["id"])

	if err != nil {
		util.RespondNotFound(writer)

		return false
	}

	if err := query.LoadCoinByID(conn, coin, user.ID, coinID); err != nil {
		if err == database.ErrNoRows {
			util.RespondNotFound(writer)
		} else {
			util.RespondInternalServerError(writer, err)
		}

		return false
	}

	return true
}

func HandleCoin(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := CoinPageData{}
	data.Materials = model.CoinMaterials

	if !util.RequireUser(conn, writer, request, &data.User) {
		return
	}

	if loadCoinForRequest(conn, writer, request, &data.User, &data.Coin) {
		template.Render(template.Coin, writer, data)
	}
}

func isCoinMaterial(value string) bool {
	for _, material := range model.CoinMaterials {
		if value == material {
			return true
		}
	}

	return false
}

func loadCoinFromForm(writer http.ResponseWriter, request *http.Request, coin *model.Coin) bool {
	if err := request.ParseMultipartForm(maxImageBytes); err != nil {
		util.RespondValidationError(writer, "Invalid form submission")

		return false
	}

	coin.Name = strings.TrimSpace(request.Form.Get("name"))

	if len(coin.Name) == 0 {
		util.RespondValidationError(writer, "Name is required")

		return false
	}

	coin.Material = request.Form.Get("material")

	if !isCoinMaterial(coin.Material) {
		util.RespondValidationError(writer, "Invalid material")

		return false
	}

	coin.Year = 0

	if yearValue := request.Form.Get("year"); yearValue != "" {
		year, err := strconv.Atoi(yearValue)

		if err != nil {
			util.RespondValidationError(writer, "Invalid year")

			return false
		}

		coin.Year = year
	}

	worth, err := decimal.NewFromString(request.Form.Get("worth"))

	if err != nil || worth.IsNegative() {
		util.RespondValidationError(writer, "Invalid worth")

		return false
	}

	cost, err := decimal.NewFromString(request.Form.Get("cost"))

	if err != nil || cost.IsNegative() {
		util.RespondValidationError(writer, "Invalid cost")

		return false
	}

	coin.Worth = worth
	coin.Cost = cost
	coin.Notes = strings.TrimSpace(request.Form.Get("notes"))

	return true
}

// saveCoinImage stores an uploaded image and sets it on the coin, keeping
// whatever image the coin already had when the form included none.
//
// A replaced file stays on disk here: the row still references it until the
// caller's database write lands, so only the caller may remove it.
func saveCoinImage(
	images *upload.Store,
	writer http.ResponseWriter,
	request *http.Request,
	coin *model.Coin,
) bool {
	file, header, err := request.FormFile("image")

	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return true
		}

		util.RespondValidationError(writer, "Invalid image upload")

		return false
	}

	defer file.Close()

	name, err := images.Save(file, header.Filename)

	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) {
			util.RespondValidationError(writer, "Images must be jpg, png, gif, or webp")
		} else {
			util.RespondInternalServerError(writer, err)
		}

		return false
	}

	coin.Image = name

	return true
}

func removeCoinImage(images *upload.Store, name string) {
	if err := images.Remove(name); err != nil {
		log.Warn().Err(err).Str("image", name).Msg("could not remove coin image")
	}
}

func HandleSubmitCoin(conn *database.Conn, images *upload.Store, writer http.ResponseWriter, request *http.Request) {
	var user model.User
	var coin model.Coin

	if !util.RequireFormUser(conn, writer, request, &user) {
		return
	}

	if loadCoinFromForm(writer, request, &coin) && saveCoinImage(images, writer, request, &coin) {
		insertSQL := `
		insert into stack_coin(user_id, name, material, year, worth, cost, image, notes)
		values ($1, $2, $3, $4, $5, $6, $7, $8)
		`

		err := conn.Exec(
			insertSQL,
			user.ID,
			coin.Name,
			coin.Material,
			coin.Year,
			coin.Worth,
			coin.Cost,
			coin.Image,
			coin.Notes,
		)

		if err != nil {
			removeCoinImage(images, coin.Image)
			util.RespondInternalServerError(writer, err)
		} else {
			http.Redirect(writer, request, "/coins", http.StatusFound)
		}
	}
}

func HandleUpdateCoin(conn *database.Conn, images *upload.Store, writer http.ResponseWriter, request *http.Request) {
	var user model.User
	var coin model.Coin

	if !util.RequireFormUser(conn, writer, request, &user) {
		return
	}

	if !loadCoinForRequest(conn, writer, request, &user, &coin) ||
		!loadCoinFromForm(writer, request, &coin) {
		return
	}

	// The replaced image can only go once the row stops referencing it, so
	// hold on to it until the update lands.
	previous := coin.Image

	if !saveCoinImage(images, writer, request, &coin) {
		return
	}

	updateSQL := `
	update stack_coin
	set name = $2,
		material = $3,
		year = $4,
		worth = $5,
		cost = $6,
		image = $7,
		notes = $8
	where id = $1
	`

	err := conn.Exec(
		updateSQL,
		coin.ID,
		coin.Name,
		coin.Material,
		coin.Year,
		coin.Worth,
		coin.Cost,
		coin.Image,
		coin.Notes,
	)

	if err != nil {
		if coin.Image != previous {
			removeCoinImage(images, coin.Image)
		}

		util.RespondInternalServerError(writer, err)

		return
	}

	if coin.Image != previous {
		removeCoinImage(images, previous)
	}

	http.Redirect(writer, request, "/coins", http.StatusFound)
}

func HandleDeleteCoin(conn *database.Conn, images *upload.Store, writer http.ResponseWriter, request *http.Request) {
	var user model.User
	var coin model.Coin

	if !util.RequireFormUser(conn, writer, request, &user) {
		return
	}

	if loadCoinForRequest(conn, writer, request, &user, &coin) {
		if err := conn.Exec("delete from stack_coin where id = $1", coin.ID); err != nil {
			util.RespondInternalServerError(writer, err)
		} else {
			removeCoinImage(images, coin.Image)
			writer.WriteHeader(http.StatusNoContent)
		}
	}
}
