package mock

import (
	"context"

	"github.com/fwojciec/fragmen"
)

var _ fragmen.ConfigService = (*ConfigService)(nil)

// ConfigService is a mock implementation of fragmen.ConfigService.
type ConfigService struct {
	LoadConfigFn func(ctx context.Context) (*fragmen.Config, error)
	SaveConfigFn func(ctx context.Context, cfg *fragmen.Config) error
}

func (s *ConfigService) LoadConfig(ctx context.Context) (*fragmen.Config, error) {
	return s.LoadConfigFn(ctx)
}

func (s *ConfigService) SaveConfig(ctx context.Context, cfg *fragmen.Config) error {
	return s.SaveConfigFn(ctx, cfg)
}

var _ fragmen.ConfigPrompter = (*ConfigPrompter)(nil)

// ConfigPrompter is a mock implementation of fragmen.ConfigPrompter.
type ConfigPrompter struct {
	PromptFn func(ctx context.Context, defaults *fragmen.Config) (*fragmen.Config, error)
}

func (p *ConfigPrompter) Prompt(ctx context.Context, defaults *fragmen.Config) (*fragmen.Config, error) {
	return p.PromptFn(ctx, defaults)
}
