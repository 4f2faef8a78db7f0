package main

import (
	"os"

	"github.com/sanjithdevineni/AoA-Project-1/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
