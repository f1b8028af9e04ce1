package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CinderZhang/financialdatasets-docs/internal/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize the configuration file",
	RunE:  runOnboard,
}

func runOnboard(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Printf("Config already exists at %s\n", cfgPath)
		fmt.Printf("Press Enter to refresh (keep existing values) or Ctrl+C to cancel: ")
		fmt.Scanln()
		existing, loadErr := config.Load(cfgPath)
		if loadErr != nil {
			def := config.DefaultConfig()
			existing = &def
		}
		if err := config.Save(existing, cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Config refreshed at %s\n", cfgPath)
	} else {
		cfg := config.DefaultConfig()
		if err := config.Save(&cfg, cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Created config at %s\n", cfgPath)
	}

	fmt.Printf("\n%s findata-mcp is ready!\n\n", logo)
	fmt.Println("Next steps:")
	fmt.Printf("  1. Add your API key to %s\n", cfgPath)
	fmt.Println("     Get one at: https://financialdatasets.ai")
	fmt.Println("  2. Check the setup: findata-mcp status")
	fmt.Println("  3. Start the server: findata-mcp serve")
	return nil
}
