package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/SVignesh2004/Weather-App/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	app.Route("/", func() app.Composer { return &ui.Widget{} })

	// Blocks in the browser; returns immediately on the server.
	app.RunWhenOnBrowser()

	serve()
}
