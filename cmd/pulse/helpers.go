package main

import (
	"fmt"

	"github.com/ekta-240/provider-pulse/internal/api"
	"github.com/ekta-240/provider-pulse/internal/config"
)

// loadDeps resolves the configuration and builds the backend client.
// Per-call timeouts come from contexts, not the transport: run-batch
// blocks for as long as the backend needs.
func loadDeps() (config.Config, api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	client := api.NewClient(api.WithBaseURL(cfg.API.BaseURL))
	return cfg, client, nil
}
