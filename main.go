package main

import (
	"log"

	"github.com/sankalp-academy/site-api/app"
)

func main() {
	if err := app.SetupAndRunServer(); err != nil {
		log.Fatal(err)
	}
}
