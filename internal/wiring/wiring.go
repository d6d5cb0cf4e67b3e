// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/geocache/internal/adapters/config"
	_ "go.trai.ch/geocache/internal/adapters/geofeed"
	_ "go.trai.ch/geocache/internal/adapters/hash"
	_ "go.trai.ch/geocache/internal/adapters/logger"
	_ "go.trai.ch/geocache/internal/adapters/storage"
	_ "go.trai.ch/geocache/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/geocache/internal/app"
)
