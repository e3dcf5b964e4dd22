// Export the inventory tables into CSV files for backups.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/ShadowWhisperer/MyStack/internal/database"
	"github.com/ShadowWhisperer/MyStack/internal/env"
)

func main() {
	env.LoadEnvironmentVariables()

	outputDir := argOrDefault(1, "export")

	conn, err := database.Connect()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %s\n", err)
		os.Exit(1)
	}

	defer conn.Close()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %s\n", err)
		os.Exit(1)
	}

	if err := exportUsers(conn, outputDir); err != nil {
		exitWithError("Export users", err)
	}

	if err := exportMetals(conn, outputDir); err != nil {
		exitWithError("Export metals", err)
	}

	if err := exportCoins(conn, outputDir); err != nil {
		exitWithError("Export coins", err)
	}

	if err := exportGoldbacks(conn, outputDir); err != nil {
		exitWithError("Export goldbacks", err)
	}
}

func exportUsers(conn *database.Conn, outputDir string) error {
	rows, err := conn.Query("select id, username, password from stack_user order by id")

	if err != nil {
		return err
	}

	defer rows.Close()

	writer, file, err := createCSV(filepath.Join(outputDir, "stack_user.csv"))

	if err != nil {
		return err
	}

	defer file.Close()

	if err := writer.Write([]string{"id", "username", "password"}); err != nil {
		return err
	}

	for rows.Next() {
		var id int64
		var username string
		var password string

		if err := rows.Scan(&id, &username, &password); err != nil {
			return err
		}

		if err := writer.Write([]string{
			fmt.Sprintf("%d", id),
			username,
			password,
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return rows.Err()
}

func exportMetals(conn *database.Conn, outputDir string) error {
	rows, err := conn.Query(
		`select id, user_id, name, type, weight, purity, cost, current_value, notes
		from stack_metal order by id`,
	)

	if err != nil {
		return err
	}

	defer rows.Close()

	writer, file, err := createCSV(filepath.Join(outputDir, "stack_metal.csv"))

	if err != nil {
		return err
	}

	defer file.Close()

	if err := writer.Write([]string{
		"id",
		"user_id",
		"name",
		"type",
		"weight",
		"purity",
		"cost",
		"current_value",
		"notes",
	}); err != nil {
		return err
	}

	for rows.Next() {
		var id int64
		var userID int64
		var name string
		var metalType string
		var weight decimal.Decimal
		var purity decimal.Decimal
		var cost decimal.Decimal
		var currentValue decimal.Decimal
		var notes string

		if err := rows.Scan(
			&id,
			&userID,
			&name,
			&metalType,
			&weight,
			&purity,
			&cost,
			&currentValue,
			&notes,
		); err != nil {
			return err
		}

		if err := writer.Write([]string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%d", userID),
			name,
			metalType,
			weight.String(),
			purity.String(),
			cost.String(),
			currentValue.String(),
			notes,
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return rows.Err()
}

func exportCoins(conn *database.Conn, outputDir string) error {
	rows, err := conn.Query(
		`select id, user_id, name, material, year, worth, cost, image, notes
		from stack_coin order by id`,
	)

	if err != nil {
		return err
	}

	defer rows.Close()

	writer, file, err := createCSV(filepath.Join(outputDir, "stack_coin.csv"))

	if err != nil {
		return err
	}

	defer file.Close()

	if err := writer.Write([]string{
		"id",
		"user_id",
		"name",
		"material",
		"year",
		"worth",
		"cost",
		"image",
		"notes",
	}); err != nil {
		return err
	}

	for rows.Next() {
		var id int64
		var userID int64
		var name string
		var material string
		var year int
		var worth decimal.Decimal
		var cost decimal.Decimal
		var image string
		var notes string

		if err := rows.Scan(
			&id,
			&userID,
			&name,
			&material,
			&year,
			&worth,
			&cost,
			&image,
			&notes,
		); err != nil {
			return err
		}

		if err := writer.Write([]string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%d", userID),
			name,
			material,
			fmt.Sprintf("%d", year),
			worth.String(),
			cost.String(),
			image,
			notes,
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return rows.Err()
}

func exportGoldbacks(conn *database.Conn, outputDir string) error {
	rows, err := conn.Query(
		`select id, user_id, denomination, count, cost, notes
		from stack_goldback order by id`,
	)

	if err != nil {
		return err
	}

	defer rows.Close()

	writer, file, err := createCSV(filepath.Join(outputDir, "stack_goldback.csv"))

	if err != nil {
		return err
	}

	defer file.Close()

	if err := writer.Write([]string{
		"id",
		"user_id",
		"denomination",
		"count",
		"cost",
		"notes",
	}); err != nil {
		return err
	}

	for rows.Next() {
		var id int64
		var userID int64
		var denomination decimal.Decimal
		var count int
		var cost decimal.Decimal
		var notes string

		if err := rows.Scan(
			&id,
			&userID,
			&denomination,
			&count,
			&cost,
			&notes,
		); err != nil {
			return err
		}

		if err := writer.Write([]string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%d", userID),
			denomination.String(),
			fmt.Sprintf("%d", count),
			cost.String(),
			notes,
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return rows.Err()
}

func createCSV(path string) (*csv.Writer, *os.File, error) {
	file, err := os.Create(path)

	if err != nil {
		return nil, nil, err
	}

	writer := csv.NewWriter(file)

	return writer, file, nil
}

func argOrDefault(position int, fallback string) string {
	if len(os.Args) > position {
		return os.Args[position]
	}

	return fallback
}

func exitWithError(action string, err error) {
	fmt.Fprintf(os.Stderr, "%s error: %s\n", action, err)
	os.Exit(1)
}
