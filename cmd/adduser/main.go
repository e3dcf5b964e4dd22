// Create a user for logging in to the inventory.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/ShadowWhisperer/MyStack/internal/database"
	"github.com/ShadowWhisperer/MyStack/internal/env"
)

// bcryptCost trades hashing speed for resistance to offline cracking.
const bcryptCost = 14

func exitWithError(message string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", message, err)
	os.Exit(1)
}

func main() {
	env.LoadEnvironmentVariables()

	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: adduser <username> <password>\n")
		os.Exit(1)
	}

	username := os.Args[1]
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(os.Args[2]), bcryptCost)

	if err != nil {
		exitWithError("Password hashing error", err)
	}

	conn, err := database.Connect()

	if err != nil {
		exitWithError("Connection error", err)
	}

	defer conn.Close()

	err = conn.Exec(
		"insert into stack_user(username, password) values($1, $2)",
		username,
		string(passwordHash),
	)

	if err != nil {
		exitWithError("Query error", err)
	}

	fmt.Printf("Created user %s\n", username)
}
