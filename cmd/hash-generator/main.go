// Command hash-generator prints the bcrypt hash of a passphrase, for
// seeding or repairing the passphrase-lock slot by hand.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator <passphrase>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash passphrase: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(hash))
}
