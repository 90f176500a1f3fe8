package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Prints a bcrypt hash for ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/hash-password <password>
func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "usage: hash-password <password>")
		os.Exit(2)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ Failed to hash password:", err)
		os.Exit(1)
	}

	// single quotes keep godotenv from expanding the $ segments
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hashedPassword)
}
