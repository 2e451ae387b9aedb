//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"kline-tools/internal/app"
	"kline-tools/internal/barview"
)

// App holds the dependencies shared by the subcommands.
type App struct {
	Config    *app.Config
	Previewer *barview.Previewer
}

// InitializeApp builds App (Config + Previewer) via Wire.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvidePreviewer,
		wire.Struct(new(App), "Config", "Previewer"),
	)
	return nil, nil
}
