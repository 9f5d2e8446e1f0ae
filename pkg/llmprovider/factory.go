package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"task-assistant/config"
	"task-assistant/pkg/deepseek"
	"task-assistant/pkg/gemini"
	"task-assistant/pkg/log"
)

// InitializeProviders builds enabled providers sorted by ascending priority.
// Providers that fail to initialize are skipped and logged.
func InitializeProviders(ctx context.Context, cfg config.LLMConfig, l log.Logger) ([]Provider, error) {
	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s (priority %d): %v", p.Name, p.Priority, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: every enabled provider failed to initialize", ErrNoProvidersConfigured)
	}
	return providers, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	var httpClient *http.Client
	if cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client), nil

	case "deepseek", "qwen", "alibaba":
		baseURL, model := cfg.BaseURL, cfg.Model
		if cfg.Name != "deepseek" {
			if baseURL == "" {
				baseURL = deepseek.QwenBaseURL
			}
			if model == "" {
				model = deepseek.QwenDefaultModel
			}
		}
		client, err := deepseek.New(deepseek.Config{
			APIKey:     cfg.APIKey,
			Model:      model,
			BaseURL:    baseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, err
		}
		return NewOpenAICompatAdapter(cfg.Name, client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
