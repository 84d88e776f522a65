// Package cli holds the passforge command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/clipboard"
	"github.com/passforge/passforge-go/internal/config"
)

// Deps are the side-effecting collaborators commands use.
type Deps struct {
	Clipboard clipboard.Writer
}

// DefaultDeps uses the system clipboard.
func DefaultDeps() Deps {
	return Deps{Clipboard: clipboard.System{}}
}

func NewRootCommand(cfg config.Config, deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "passforge",
		Short:         "Generate random passwords from selected character classes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		NewGenerateCommand(cfg, deps),
		NewPresetsCommand(cfg),
		NewTokenCommand(cfg),
		NewTUICommand(cfg, deps),
	)
	return cmd
}
