// Package main is the entry point for the crypto-cli application.
// It registers the key generation, encryption, signing and hashing commands
// and executes the command-line interface.
package main

import (
	"log"
	"os"

	commands "github.com/MGTheTrain/crypto-services/cmd/crypto-cli/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
