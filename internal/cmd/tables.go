package cmd

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gamebridge/snes2psx/mapping"
)

type Tables struct{}

// Run prints the built-in mapping tables as YAML, in selection order.
func (t *Tables) Run(_ *slog.Logger) error {
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(mapping.Presets())
}
