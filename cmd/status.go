package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CinderZhang/financialdatasets-docs/internal/config"
	"github.com/CinderZhang/financialdatasets-docs/internal/fdapi"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show findata-mcp status",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	fmt.Printf("%s findata-mcp Status\n\n", logo)

	_, statErr := os.Stat(cfgPath)
	cfgMark := "✗"
	if statErr == nil {
		cfgMark = "✓"
	}
	fmt.Printf("Config:   %s %s\n", cfgPath, cfgMark)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}

	key := cfg.API.APIKey
	keyOrigin := "config"
	if env := os.Getenv(config.EnvAPIKey); env != "" {
		key = env
		keyOrigin = "env"
	}
	if key != "" {
		fmt.Printf("API key:  %s ✓ (%s)\n", maskKey(key), keyOrigin)
	} else {
		fmt.Printf("API key:  (not set) set %s or add api.apiKey to the config\n", config.EnvAPIKey)
	}

	base := cfg.API.BaseURL
	if base == "" {
		base = fdapi.BaseURL
	}
	fmt.Printf("Base URL: %s\n", base)
	fmt.Printf("Timeout:  %s\n", cfg.Timeout())

	if cfg.Docs.Dir != "" {
		_, docsErr := os.Stat(cfg.Docs.Dir)
		docsMark := "✗"
		if docsErr == nil {
			docsMark = "✓"
		}
		fmt.Printf("Docs:     %s %s\n", cfg.Docs.Dir, docsMark)
	}
	return nil
}

// maskKey keeps enough of a key to recognize it without exposing it.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "…" + key[len(key)-4:]
}
