// Command hash-generator prints bcrypt hashes for the passwords given on
// the command line. Useful for seeding development databases by hand.
package main

import (
	"fmt"
	"os"

	"github.com/phrazzld/taskm-api/internal/service/auth"
)

func main() {
	passwords := os.Args[1:]
	if len(passwords) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator <password> [password...]")
		os.Exit(1)
	}

	hasher := auth.NewBcryptHasher(0)
	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error hashing %q: %v\n", password, err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, hash)
	}
}
