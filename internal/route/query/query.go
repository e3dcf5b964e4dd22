// Package query defines shared queries for loading holdings
package query

import (
	"github.com/ShadowWhisperer/MyStack/internal/database"
	"github.com/ShadowWhisperer/MyStack/internal/model"
)

var metalQuery = `
select
	id,
	name,
	type,
	weight,
	purity,
	cost,
	current_value,
	notes
from stack_metal
`

func scanMetal(row database.Row, metal *model.Metal) error {
	return row.Scan(
		&metal.ID,
		&metal.Name,
		&metal.Type,
		&metal.Weight,
		&metal.Purity,
		&metal.Cost,
		&metal.CurrentValue,
		&metal.Notes,
	)
}

var coinQuery = `
select
	id,
	name,
	material,
	year,
	worth,
	cost,
	image,
	notes
from stack_coin
`

func scanCoin(row database.Row, coin *model.Coin) error {
	return row.Scan(
		&coin.ID,
		&coin.Name,
		&coin.Material,
		&coin.Year,
		&coin.Worth,
		&coin.Cost,
		&coin.Image,
		&coin.Notes,
	)
}

var goldbackQuery = `
select
	id,
	denomination,
	count,
	cost,
	notes
from stack_goldback
`

func scanGoldback(row database.Row, goldback *model.Goldback) error {
	return row.Scan(
		&goldback.ID,
		&goldback.Denomination,
		&goldback.Count,
		&goldback.Cost,
		&goldback.Notes,
	)
}

// LoadMetalList loads every bulk metal holding owned by a user.
func LoadMetalList(conn *database.Conn, userID int, metalList *[]model.Metal) error {
	return model.LoadList(
		conn,
		metalList,
		20,
		scanMetal,
		metalQuery+"where user_id = $1 order by name",
		userID,
	)
}

// LoadMetalByID loads a single bulk metal holding owned by a user.
func LoadMetalByID(conn *database.Conn, metal *model.Metal, userID int, metalID int) error {
	return model.LoadOne(
		conn,
		metal,
		scanMetal,
		metalQuery+"where user_id = $1 and id = $2",
		userID,
		metalID,
	)
}

// LoadCoinList loads every coin owned by a user.
func LoadCoinList(conn *database.Conn, userID int, coinList *[]model.Coin) error {
	return model.LoadList(
		conn,
		coinList,
		20,
		scanCoin,
		coinQuery+"where user_id = $1 order by name",
		userID,
	)
}

// LoadCoinByID loads a single coin owned by a user.
func LoadCoinByID(conn *database.Conn, coin *model.Coin, userID int, coinID int) error {
	return model.LoadOne(
		conn,
		coin,
		scanCoin,
		coinQuery+"where user_id = $1 and id = $2",
		userID,
		coinID,
	)
}

// LoadGoldbackList loads every Goldback stack owned by a user.
func LoadGoldbackList(conn *database.Conn, userID int, goldbackList *[]model.Goldback) error {
	return model.LoadList(
		conn,
		goldbackList,
		20,
		scanGoldback,
		goldbackQuery+"where user_id = $1 order by denomination",
		userID,
	)
}

// LoadGoldbackByID loads a single Goldback stack owned by a user.
func LoadGoldbackByID(conn *database.Conn, goldback *model.Goldback, userID int, goldbackID int) error {
	return model.LoadOne(
		conn,
		goldback,
		scanGoldback,
		goldbackQuery+"where user_id = $1 and id = $2",
		userID,
		goldbackID,
	)
}
