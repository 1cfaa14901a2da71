package main

import (
	"os"

	"taskilo_billing/internal/adapter/cli"

	_ "github.com/joho/godotenv/autoload"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
