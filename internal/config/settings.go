package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/surge-downloader/punch/internal/alloc"
	"github.com/surge-downloader/punch/internal/utils"
)

// DefaultChunkSize is the zero-fill chunk size used when nothing else is configured.
const DefaultChunkSize = "1MiB"

// Settings holds defaults read from the settings file. Flags given on the
// command line take precedence over every field.
type Settings struct {
	NoSyscall bool   `json:"no_syscall"`
	Strict    bool   `json:"strict"`
	Verbose   bool   `json:"verbose"`
	DebugLog  bool   `json:"debug_log"`
	ChunkSize string `json:"chunk_size"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		ChunkSize: DefaultChunkSize,
	}
}

// LoadSettings reads the settings file from the default location.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom reads settings from path. A missing file is not an error.
func LoadSettingsFrom(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	if settings.ChunkSize == "" {
		settings.ChunkSize = DefaultChunkSize
	}
	if _, err := settings.ChunkBytes(); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}

	return settings, nil
}

// ChunkBytes parses ChunkSize into a positive byte count.
func (s *Settings) ChunkBytes() (int64, error) {
	n, err := utils.ParseSize(s.ChunkSize)
	if err != nil {
		return 0, fmt.Errorf("chunk_size: %w", err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("chunk_size: %w: must be greater than zero", utils.ErrInvalidSize)
	}
	if n > alloc.MaxChunkSize {
		return 0, fmt.Errorf("chunk_size: %w: must not exceed %s", utils.ErrInvalidSize, utils.FormatSize(alloc.MaxChunkSize))
	}
	return n, nil
}
