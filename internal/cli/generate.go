package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/passforge/passforge-go/internal/clipboard"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

type GenerateOptions struct {
	Length     int
	Letters    bool
	Numbers    bool
	Symbols    bool
	Exclude    string
	Complexity string
	Count      int
	Seed       uint64
	Copy       bool
}

func DefaultGenerateOptions(cfg config.Config) GenerateOptions {
	return GenerateOptions{
		Length:  cfg.DefaultLength,
		Letters: true,
		Numbers: true,
		Symbols: true,
		Count:   1,
	}
}

func (o *GenerateOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&o.Length, "length", "l", o.Length, "Password length.")
	fs.BoolVar(&o.Letters, "letters", o.Letters, "Include letters (A-Z, a-z).")
	fs.BoolVar(&o.Numbers, "numbers", o.Numbers, "Include numbers (0-9).")
	fs.BoolVar(&o.Symbols, "symbols", o.Symbols, "Include punctuation symbols.")
	fs.StringVarP(&o.Exclude, "exclude", "x", o.Exclude, "Characters that must not appear, e.g. O0l1.")
	fs.StringVarP(&o.Complexity, "complexity", "c", o.Complexity, "Preset: low, medium, high or custom. Overrides the class flags.")
	fs.IntVarP(&o.Count, "count", "n", o.Count, "Number of passwords to generate.")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "Seed for reproducible output. Never use seeded passwords for real accounts.")
	fs.BoolVar(&o.Copy, "copy", o.Copy, "Copy the first password to the clipboard. It is not cleared afterwards: CLIPBOARD_CLEAR_AFTER only applies to the tui command.")
}

// Request builds the service request. The length flag is always sent, so an
// explicit --length 0 reaches validation. The seed only applies when the flag
// was set.
func (o GenerateOptions) Request(seeded bool) model.GenerateRequest {
	req := model.GenerateRequest{
		Length:     &o.Length,
		Letters:    &o.Letters,
		Numbers:    &o.Numbers,
		Symbols:    &o.Symbols,
		Exclude:    o.Exclude,
		Complexity: o.Complexity,
		Count:      o.Count,
	}
	if seeded {
		seed := o.Seed
		req.Seed = &seed
	}
	return req
}

func NewGenerateCommand(cfg config.Config, deps Deps) *cobra.Command {
	opts := DefaultGenerateOptions(cfg)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Print one or more random passwords.",
		Example: `  passforge generate --length 20 --exclude O0l1
  passforge generate -c medium -n 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := service.NewGeneratorService(cfg.DefaultLength, cfg.MaxLength)
			resp, err := svc.Generate(opts.Request(cmd.Flags().Changed("seed")))
			if err != nil {
				return err
			}

			passwords := resp.Passwords
			if len(passwords) == 0 {
				passwords = []string{resp.Password}
			}
			for _, p := range passwords {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}

			if opts.Copy {
				// The process exits right away, so no clear is scheduled.
				if err := clipboard.NewCopier(deps.Clipboard, 0).Copy(resp.Password); err != nil {
					return err
				}
				color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "Password copied to clipboard!")
			}
			return nil
		},
	}

	opts.AddFlags(cmd.Flags())
	return cmd
}
