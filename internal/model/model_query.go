package model

import (
	"github.com/ShadowWhisperer/MyStack/internal/database"
)

// LoadList loads rows from a database into a list.
//
// The `scan` function determines how to set the values on each object.
func LoadList[T any](
	conn database.Queryable,
	list *[]T,
	capacity int,
	scan func(database.Row, *T) error,
	sql string,
	arguments ...any,
) error {
	rows, err := conn.Query(sql, arguments...)

	if err != nil {
		return err
	}

	defer rows.Close()

	*list = make([]T, 0, capacity)
	var instance T

	for rows.Next() {
		if err := scan(rows, &instance); err != nil {
			return err
		}

		*list = append(*list, instance)
	}

	return rows.Err()
}

// LoadOne loads a single row into an object, scanning with the same kind of
// function LoadList uses. Missing rows surface as database.ErrNoRows.
func LoadOne[T any](
	conn database.Queryable,
	instance *T,
	scan func(database.Row, *T) error,
	sql string,
	arguments ...any,
) error {
	return scan(conn.QueryRow(sql, arguments...), instance)
}
