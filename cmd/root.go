// Package cmd implements the findata-mcp CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "📈"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "findata-mcp",
	Short: logo + " findata-mcp — Financial Datasets MCP server",
	Long:  logo + " findata-mcp — a Model Context Protocol server exposing the Financial Datasets API as tools",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(docsCmd)
}
