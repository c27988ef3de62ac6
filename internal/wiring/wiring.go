// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/smelt/internal/adapters/config"
	_ "go.trai.ch/smelt/internal/adapters/extractor"
	_ "go.trai.ch/smelt/internal/adapters/logger"
	_ "go.trai.ch/smelt/internal/adapters/manifest"
	_ "go.trai.ch/smelt/internal/adapters/telemetry"
	_ "go.trai.ch/smelt/internal/adapters/tsconfig"
	_ "go.trai.ch/smelt/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/smelt/internal/app"
	_ "go.trai.ch/smelt/internal/engine/assembler"
	_ "go.trai.ch/smelt/internal/engine/rollup"
)
