// Package config defines the CLI structure for kong parsing.
package config

import (
	"github.com/gamebridge/snes2psx/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"SNES2PSX_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"SNES2PSX_LOG_FILE"`
}

// CLI is the root command structure.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Config string `help:"Explicit config file path" env:"SNES2PSX_CONFIG"`

	Serve  cmd.Serve  `cmd:"" help:"Run the bridge and serve the controller bus over TCP"`
	Tables cmd.Tables `cmd:"" help:"Print the built-in mapping tables"`
}
