package main

import (
	"os"

	"flywaydeck/config"
	"flywaydeck/export"
)

func main() {
	app := NewApp(os.Stdout, export.NewPPTService())
	os.Exit(app.Run(config.DefaultPath))
}
