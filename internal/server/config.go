package server

import (
	"log"
	"os"
	"strconv"
)

// DefaultMaxPixels caps the height*width of a single bulk request.
const DefaultMaxPixels = 1 << 24

// Config holds the runtime settings of a Server.
type Config struct {
	// MaxPixels is the largest height*width accepted by the bulk tools.
	// Zero or negative disables the limit.
	MaxPixels int

	// Debug enables per-tool logging.
	Debug bool
}

// DefaultConfig returns the settings used by New.
func DefaultConfig() Config {
	return Config{MaxPixels: DefaultMaxPixels}
}

// ConfigFromEnv builds a Config from the environment:
//
//   - COLOR_MCP_LOG_LEVEL=debug enables debug logging
//   - COLOR_MCP_MAX_PIXELS=N sets MaxPixels
//
// Unparsable values are logged and the default is kept.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if os.Getenv("COLOR_MCP_LOG_LEVEL") == "debug" {
		cfg.Debug = true
	}

	if v := os.Getenv("COLOR_MCP_MAX_PIXELS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Ignoring COLOR_MCP_MAX_PIXELS=%q: %v", v, err)
		} else {
			cfg.MaxPixels = n
		}
	}

	return cfg
}
