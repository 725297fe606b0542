package main

import (
	"os"

	"github.com/joho/godotenv"

	"paranoid-users/internal/cli/commands"
)

func main() {
	_ = godotenv.Load()
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
