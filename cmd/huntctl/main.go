package main

import (
	"github.com/oridashi/scrollhunt/internal/cli"
)

func main() {
	cli.Execute()
}
