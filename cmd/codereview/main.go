package main

import (
	"os"

	"github.com/AnanyaVY/code-reviewer/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
