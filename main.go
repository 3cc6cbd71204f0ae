package main

import (
	"os"

	"github.com/showcase-apps/showcase/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
