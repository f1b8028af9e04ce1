package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CinderZhang/financialdatasets-docs/internal/config"
	"github.com/CinderZhang/financialdatasets-docs/internal/container"
)

var toolsJSON bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server advertises",
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Print the catalog as JSON, schemas included")
}

func runTools(_ *cobra.Command, _ []string) error {
	// The catalog is static; listing it needs no API key.
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c, err := container.New(cfg)
	if err != nil {
		return err
	}

	infos := c.Registry().Tools()
	if toolsJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s findata-mcp tools (%d)\n\n", logo, len(infos))
	for _, info := range infos {
		fmt.Printf("  %-28s %s\n", info.Name, info.Description)
	}
	return nil
}
