package main

import (
	"os"

	"github.com/andriwebdev/portfolio-admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
