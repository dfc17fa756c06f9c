package main

import (
	"fmt"
	"os"

	"crmdesk/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
