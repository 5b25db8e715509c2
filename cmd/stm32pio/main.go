package main

import (
	"os"

	"github.com/stm32pio/stm32pio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
