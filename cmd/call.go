package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CinderZhang/financialdatasets-docs/internal/config"
	"github.com/CinderZhang/financialdatasets-docs/internal/container"
	"github.com/CinderZhang/financialdatasets-docs/internal/shared/cmdutils"
)

var callArgs string

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Invoke one tool and print its result",
	Long:  "Invoke one tool through the same dispatch path MCP clients use and print the text result.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCall,
}

func init() {
	callCmd.Flags().StringVarP(&callArgs, "args", "a", "{}", "Tool arguments as a JSON object")
}

func runCall(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Resolve(); err != nil {
		return err
	}

	c, err := container.New(cfg)
	if err != nil {
		return err
	}

	var toolArgs map[string]any
	if err := json.Unmarshal([]byte(callArgs), &toolArgs); err != nil {
		return fmt.Errorf("parse --args: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result := c.Dispatcher().Dispatch(ctx, args[0], toolArgs)
	if result.IsError {
		return fmt.Errorf("%s", result.Text())
	}
	cmdutils.PrintResponse(result.Text())
	return nil
}
