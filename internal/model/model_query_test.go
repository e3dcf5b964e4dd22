package model

import (
	"errors"
	"testing"

	"github.com/ShadowWhisperer/MyStack/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedThing struct {
	ID   int
	Name string
}

func scanNamedThing(row database.Row, thing *namedThing) error {
	return row.Scan(&thing.ID, &thing.Name)
}

type fakeRows struct {
	values  [][]any
	index   int
	scanErr error
	rowsErr error
	closed  bool
}

func (rows *fakeRows) Next() bool {
	if rows.index >= len(rows.values) {
		return false
	}

	rows.index++

	return true
}

func (rows *fakeRows) Scan(dest ...any) error {
	if rows.scanErr != nil {
		return rows.scanErr
	}

	row := rows.values[rows.index-1]

	for i := range dest {
		switch pointer := dest[i].(type) {
		case *int:
			*pointer = row[i].(int)
		case *string:
			*pointer = row[i].(string)
		}
	}

	return nil
}

func (rows *fakeRows) Close() {
	rows.closed = true
}

func (rows *fakeRows) Err() error {
	return rows.rowsErr
}

type scanFunc func(dest ...any) error

func (scan scanFunc) Scan(dest ...any) error {
	return scan(dest...)
}

type fakeConn struct {
	rows      *fakeRows
	row       database.Row
	queryErr  error
	sql       string
	arguments []any
}

func (conn *fakeConn) Exec(sql string, arguments ...any) error {
	return nil
}

func (conn *fakeConn) Query(sql string, arguments ...any) (database.Rows, error) {
	conn.sql = sql
	conn.arguments = arguments

	if conn.queryErr != nil {
		return nil, conn.queryErr
	}

	return conn.rows, nil
}

func (conn *fakeConn) QueryRow(sql string, arguments ...any) database.Row {
	conn.sql = sql
	conn.arguments = arguments

	return conn.row
}

func TestLoadList(t *testing.T) {
	rows := &fakeRows{
		values: [][]any{
			{1, "gold bar"},
			{2, "silver round"},
		},
	}
	conn := &fakeConn{rows: rows}

	var list []namedThing
	err := LoadList(conn, &list, 10, scanNamedThing, "select id, name from things where id > $1", 0)

	require.NoError(t, err)
	assert.Equal(t, []namedThing{{1, "gold bar"}, {2, "silver round"}}, list)
	assert.Equal(t, "select id, name from things where id > $1", conn.sql)
	assert.Equal(t, []any{0}, conn.arguments)
	assert.True(t, rows.closed)
}

func TestLoadListEmpty(t *testing.T) {
	conn := &fakeConn{rows: &fakeRows{}}

	list := []namedThing{{99, "stale"}}
	err := LoadList(conn, &list, 4, scanNamedThing, "select id, name from things")

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestLoadListQueryError(t *testing.T) {
	conn := &fakeConn{queryErr: errors.New("broken pipe")}

	var list []namedThing
	err := LoadList(conn, &list, 1, scanNamedThing, "select id, name from things")

	assert.EqualError(t, err, "broken pipe")
}

func TestLoadListScanError(t *testing.T) {
	rows := &fakeRows{
		values:  [][]any{{1, "gold bar"}},
		scanErr: errors.New("bad column"),
	}
	conn := &fakeConn{rows: rows}

	var list []namedThing
	err := LoadList(conn, &list, 1, scanNamedThing, "select id, name from things")

	assert.EqualError(t, err, "bad column")
	assert.True(t, rows.closed)
}

func TestLoadListRowsError(t *testing.T) {
	rows := &fakeRows{rowsErr: errors.New("connection reset")}
	conn := &fakeConn{rows: rows}

	var list []namedThing
	err := LoadList(conn, &list, 1, scanNamedThing, "select id, name from things")

	assert.EqualError(t, err, "connection reset")
}

func TestLoadOne(t *testing.T) {
	conn := &fakeConn{
		row: scanFunc(func(dest ...any) error {
			*dest[0].(*int) = 7
			*dest[1].(*string) = "morgan dollar"

			return nil
		}),
	}

	var thing namedThing
	err := LoadOne(conn, &thing, scanNamedThing, "select id, name from things where id = $1", 7)

	require.NoError(t, err)
	assert.Equal(t, namedThing{7, "morgan dollar"}, thing)
	assert.Equal(t, []any{7}, conn.arguments)
}

func TestLoadOneNoRows(t *testing.T) {
	conn := &fakeConn{
		row: scanFunc(func(dest ...any) error {
			return database.ErrNoRows
		}),
	}

	var thing namedThing
	err := LoadOne(conn, &thing, scanNamedThing, "select id, name from things where id = $1", 8)

	assert.ErrorIs(t, err, database.ErrNoRows)
}
