package main

import (
	"os"

	"github.com/Ompatel28102004/travel-saathi/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
