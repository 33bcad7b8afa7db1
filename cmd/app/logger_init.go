package main

import (
	"github.com/osse101/SwordForge_Go/internal/logger"
)

// initBootLogger installs a plain stdout logger so configuration errors are
// reported before the configured logger exists.
func initBootLogger() {
	logger.InitLogger(logger.DefaultConfig())
}
