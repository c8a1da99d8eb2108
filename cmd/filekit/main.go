package main

import (
	"github.com/filekit-dev/filekit-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
