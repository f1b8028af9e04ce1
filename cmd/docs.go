package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CinderZhang/financialdatasets-docs/internal/config"
	"github.com/CinderZhang/financialdatasets-docs/internal/docs"
)

var docsDir string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Work with the Mintlify documentation tree",
}

var docsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate page frontmatter and docs.json navigation",
	RunE:  runDocsCheck,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documentation pages with their titles",
	RunE:  runDocsList,
}

func init() {
	docsCmd.PersistentFlags().StringVar(&docsDir, "dir", "", "Documentation tree root (default: docs.dir from config, else .)")
	docsCmd.AddCommand(docsCheckCmd)
	docsCmd.AddCommand(docsListCmd)
}

func resolveDocsDir() string {
	if docsDir != "" {
		return docsDir
	}
	if cfg, err := config.Load(config.ConfigPath()); err == nil && cfg.Docs.Dir != "" {
		return cfg.Docs.Dir
	}
	return "."
}

func runDocsCheck(_ *cobra.Command, _ []string) error {
	dir := resolveDocsDir()
	problems, err := docs.NewChecker(dir).Check()
	if err != nil {
		return err
	}
	if len(problems) == 0 {
		fmt.Printf("✓ Docs tree at %s looks good\n", dir)
		return nil
	}
	for _, p := range problems {
		fmt.Println(p)
	}
	return fmt.Errorf("%d problem(s) in %s", len(problems), dir)
}

func runDocsList(_ *cobra.Command, _ []string) error {
	dir := resolveDocsDir()
	pages, err := docs.NewChecker(dir).Pages()
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		fmt.Printf("No pages found under %s\n", dir)
		return nil
	}
	for _, p := range pages {
		title := p.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("  %-44s %s\n", p.Path, title)
	}
	return nil
}
