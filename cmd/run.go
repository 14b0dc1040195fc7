package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/leafiz/internal/analytics"
	"github.com/abhisek/leafiz/internal/app"
	"github.com/abhisek/leafiz/internal/catalog"
	"github.com/abhisek/leafiz/internal/config"
	"github.com/abhisek/leafiz/internal/llm"
	"github.com/abhisek/leafiz/internal/mnemonic"
	"github.com/abhisek/leafiz/internal/progress"
	"github.com/abhisek/leafiz/internal/round"
	"github.com/abhisek/leafiz/internal/selection"
	"github.com/abhisek/leafiz/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load plant catalog: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, fileCfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	prog := progress.Load(st, cat)
	tracker := analytics.Load(st)
	engine := selection.NewEngine(cat, prog, nil)

	roundCfg := round.DefaultConfig()
	if q := fileCfg.Game.QuestionsPerRound; q != nil && *q > 0 {
		roundCfg.TotalQuestions = *q
	}

	opts := app.Options{
		Catalog:     cat,
		Progress:    prog,
		Tracker:     tracker,
		Engine:      engine,
		RoundConfig: roundCfg,
	}

	provider, err := newLLMProvider(cmd, fileCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Generated memory aids will be unavailable.")
	} else {
		opts.Aids = mnemonic.NewService(provider, mnemonic.DefaultConfig())
	}

	return app.Run(opts)
}

// newLLMProvider builds the provider from env vars with config-file
// overrides applied first.
func newLLMProvider(cmd *cobra.Command, fileCfg config.FileConfig) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	applyLLMFileConfig(&cfg, fileCfg)

	if err := cfg.Validate(); err != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		} else {
			return nil, err
		}
	}
	return llm.NewProvider(cmd.Context(), cfg)
}

// applyLLMFileConfig layers config-file LLM settings under env vars.
func applyLLMFileConfig(cfg *llm.Config, fileCfg config.FileConfig) {
	if p := fileCfg.LLM.Provider; p != nil && os.Getenv("LEAFIZ_LLM_PROVIDER") == "" {
		cfg.Provider = *p
	}
	if m := fileCfg.LLM.Model; m != nil && *m != "" {
		switch cfg.Provider {
		case "anthropic":
			if os.Getenv("LEAFIZ_ANTHROPIC_MODEL") == "" {
				cfg.Anthropic.Model = *m
			}
		case "openai":
			if os.Getenv("LEAFIZ_OPENAI_MODEL") == "" {
				cfg.OpenAI.Model = *m
			}
		case "gemini":
			if os.Getenv("LEAFIZ_GEMINI_MODEL") == "" {
				cfg.Gemini.Model = *m
			}
		case "openrouter":
			if os.Getenv("LEAFIZ_OPENROUTER_MODEL") == "" {
				cfg.OpenRouter.Model = *m
			}
		}
	}
}
