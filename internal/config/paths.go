package config

import (
	"os"
	"path/filepath"
	"strings"
)

// CandidatePaths returns the config files kong should try, grouped by
// format, lowest priority first. userPath, when set, is sorted into the
// matching group by extension and tried last so it wins.
func CandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if dir, err := os.UserConfigDir(); err == nil {
		base := filepath.Join(dir, "snes2psx")
		jsonPaths = append(jsonPaths, filepath.Join(base, "config.json"))
		yamlPaths = append(yamlPaths, filepath.Join(base, "config.yaml"), filepath.Join(base, "config.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(base, "config.toml"))
	}

	jsonPaths = append(jsonPaths, "snes2psx.json")
	yamlPaths = append(yamlPaths, "snes2psx.yaml", "snes2psx.yml")
	tomlPaths = append(tomlPaths, "snes2psx.toml")

	if userPath != "" {
		switch strings.ToLower(filepath.Ext(userPath)) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userPath)
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}
	return jsonPaths, yamlPaths, tomlPaths
}
