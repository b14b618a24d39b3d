package main

import (
	"os"

	tool "github.com/semantic-product-search/internal/tools/seed"
)

func main() {
	if err := tool.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
