package main

import (
	"os"

	"github.com/Manbeardo/is-even/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args, os.Stdout, os.Stderr, os.Getenv))
}
