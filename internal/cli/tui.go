package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/clipboard"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/tui"
)

func NewTUICommand(cfg config.Config, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive password form.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if clipboard.Unavailable() {
				slog.Warn("system clipboard unavailable, copying will fail")
			}

			copier := clipboard.NewCopier(deps.Clipboard, cfg.ClipboardClearAfter)
			defer copier.Flush()

			// The form owns the terminal; log lines would corrupt it.
			prev := slog.Default()
			slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
			defer slog.SetDefault(prev)

			return tui.NewApp(tui.NewController(crypto.SecureSource, copier)).Run()
		},
	}
}
