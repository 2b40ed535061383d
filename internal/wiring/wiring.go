// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/quantimg/featplan/internal/adapters/config"
	_ "github.com/quantimg/featplan/internal/adapters/logger"
	_ "github.com/quantimg/featplan/internal/adapters/results"
	_ "github.com/quantimg/featplan/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/quantimg/featplan/internal/app"
	_ "github.com/quantimg/featplan/internal/engine/analyzer"
	_ "github.com/quantimg/featplan/internal/engine/executor"
)
