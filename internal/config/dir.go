// Package config loads issueposts settings from YAML or JSONC files.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Dir returns the issueposts configuration directory.
//
// Resolution:
//   - $ISSUEPOSTS_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/issueposts, or the platform default config home
func Dir() string {
	if dir := os.Getenv("ISSUEPOSTS_CONFIG_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, "issueposts")
}
