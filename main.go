package main

import (
	"fmt"
	"os"

	"github.com/HARPLab/human-ai-value-alignment/experiments"
)

func main() {
	if err := experiments.GetRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
