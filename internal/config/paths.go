package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "punch"

// GetPunchDir returns the directory holding punch's settings.
func GetPunchDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetLogsDir returns the directory debug logs are written to.
func GetLogsDir() string {
	return filepath.Join(GetPunchDir(), "logs")
}

// GetSettingsPath returns the location of the optional settings file.
func GetSettingsPath() string {
	return filepath.Join(GetPunchDir(), "settings.json")
}

// GetDebugLogPath returns the file debug lines are appended to when
// debug_log is enabled.
func GetDebugLogPath() string {
	return filepath.Join(GetLogsDir(), appName+".log")
}

// EnsureDirs creates the config and logs directories if missing.
func EnsureDirs() error {
	for _, dir := range []string{GetPunchDir(), GetLogsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
