// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/kmpinstall/internal/adapters/config"
	_ "go.trai.ch/kmpinstall/internal/adapters/logger"
	_ "go.trai.ch/kmpinstall/internal/adapters/rpm"
	_ "go.trai.ch/kmpinstall/internal/adapters/shell"
	_ "go.trai.ch/kmpinstall/internal/adapters/zypper"
	// Register app and engine nodes.
	_ "go.trai.ch/kmpinstall/internal/app"
	_ "go.trai.ch/kmpinstall/internal/engine/locator"
)
