package bootstrap

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/retailscope/footfall/agent"
	"github.com/retailscope/footfall/config"
	"github.com/retailscope/footfall/log"
	"github.com/retailscope/footfall/orm"
	"github.com/retailscope/footfall/providers/gemini"
	"github.com/retailscope/footfall/providers/ollama"
	"github.com/retailscope/footfall/providers/openai"
	"github.com/retailscope/footfall/providers/promptproto"
	"github.com/retailscope/footfall/tools"
)

// App holds the initialized components of the application
type App struct {
	Analyzer  *agent.Analyzer
	Registry  *tools.Registry
	Responder agent.Responder

	// History is nil when run persistence is disabled
	History *gorm.DB
}

// Setup initializes the application components based on the configuration
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	// 1. Tools
	registry := tools.NewRegistry()
	if err := registry.Register(tools.NewFootfallTool()); err != nil {
		return nil, fmt.Errorf("failed to register footfall tool: %w", err)
	}
	if err := registry.Register(tools.NewDateTool()); err != nil {
		return nil, fmt.Errorf("failed to register date tool: %w", err)
	}

	// 2. Responder plugin
	responder, err := setupResponder(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// 3. Analyzer
	analyzer := agent.NewAnalyzer(responder, registry)
	if cfg.Responder.MaxSteps > 0 {
		analyzer.MaxSteps = cfg.Responder.MaxSteps
	}
	analyzer.DecisionTimeout = cfg.Responder.DecisionTimeout

	// 4. Optional run history
	var history *gorm.DB
	if cfg.History.Driver != "" {
		history, err = orm.Open(cfg.History.Driver, cfg.History.DSN)
		if err != nil {
			return nil, err
		}
		log.Infof(ctx, "Run history enabled (%s)", cfg.History.Driver)
	}

	return &App{
		Analyzer:  analyzer,
		Registry:  registry,
		Responder: responder,
		History:   history,
	}, nil
}

func setupResponder(ctx context.Context, cfg *config.Config) (agent.Responder, error) {
	switch cfg.Responder.Plugin {
	case "openai", "":
		log.Infof(ctx, "Using OpenAI responder (model: %s)", cfg.Responder.OpenAI.Model)
		client, err := openai.NewClient(
			cfg.Responder.OpenAI.APIKey,
			cfg.Responder.OpenAI.Model,
			cfg.Responder.OpenAI.Temperature,
		)
		if err != nil {
			return nil, fmt.Errorf("openai responder: %w", err)
		}
		return client, nil

	case "gemini":
		log.Infof(ctx, "Using Gemini responder (model: %s)", cfg.Responder.Gemini.Model)
		client, err := gemini.NewClient(ctx, cfg.Responder.Gemini.APIKey, cfg.Responder.Gemini.Model)
		if err != nil {
			return nil, fmt.Errorf("gemini responder: %w", err)
		}
		return promptproto.NewResponder(client), nil

	case "ollama":
		log.Infof(ctx, "Using Ollama responder (model: %s)", cfg.Responder.Ollama.Model)
		client := ollama.NewClient(cfg.Responder.Ollama.BaseURL, cfg.Responder.Ollama.Model)
		return promptproto.NewResponder(client), nil

	default:
		return nil, fmt.Errorf("unknown responder plugin: %q", cfg.Responder.Plugin)
	}
}
