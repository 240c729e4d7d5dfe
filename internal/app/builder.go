package app

import "go.trai.ch/kmpinstall/internal/core/ports"

// Components bundles the application with the dependencies the entry point
// touches directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}
