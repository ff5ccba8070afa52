package main

import (
	"os"

	"github.com/tidygraph/go-tidygraph/cmd/tidygraph/app"
)

func main() {
	if err := app.New().Execute(); err != nil {
		os.Exit(1)
	}
}
