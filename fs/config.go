package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/fragmen"
)

// Ensure ConfigService implements fragmen.ConfigService at compile time.
var _ fragmen.ConfigService = (*ConfigService)(nil)

// ConfigService stores the consumer config as a JSON file.
type ConfigService struct {
	path   string
	logger *slog.Logger
}

// NewConfigService creates a new ConfigService for the file at path.
// Malformed files are reported to logger; a nil logger discards them.
func NewConfigService(path string, logger *slog.Logger) *ConfigService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ConfigService{path: path, logger: logger}
}

// LoadConfig reads the config file. A missing file yields the defaults, and
// so does a file that is not valid JSON.
func (s *ConfigService) LoadConfig(ctx context.Context) (*fragmen.Config, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return fragmen.DefaultConfig(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := fragmen.DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		s.logger.Warn("malformed config, using defaults",
			"path", s.path,
			"err", err,
		)
		return fragmen.DefaultConfig(), nil
	}

	return cfg, nil
}

// SaveConfig writes cfg as indented JSON, replacing any existing file.
func (s *ConfigService) SaveConfig(ctx context.Context, cfg *fragmen.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := *cfg
	out.Schema = fragmen.SchemaURL

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
