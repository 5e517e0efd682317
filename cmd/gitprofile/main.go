package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mwrona/gitprofile/internal/cli"
)

func main() {
	// Local .env is optional.
	_ = godotenv.Load()

	if err := cli.NewApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
