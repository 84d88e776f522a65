package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
)

func NewTokenCommand(cfg config.Config) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the HTTP API (signed with API_TOKEN_SECRET).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := crypto.GenerateToken(subject, cfg.TokenSecret, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "cli", "Subject recorded in the token.")
	cmd.Flags().DurationVar(&ttl, "ttl", cfg.TokenTTL, "Token lifetime.")
	return cmd
}
