package main

import (
	"os"

	"github.com/cinehall/cinema-booking-system/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
