package config

import (
	"errors"
	"io/fs"

	"github.com/subosito/gotenv"

	"playbook-backend/internal/shared/telemetry"
)

// loadEnvFiles exports KEY=VALUE pairs from the files that exist. Variables
// already present in the environment are left alone.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if err := gotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			telemetry.Warn("config.env_file", map[string]any{"path": path, "error": err})
		}
	}
}
