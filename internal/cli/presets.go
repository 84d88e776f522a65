package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/service"
)

func NewPresetsCommand(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the complexity presets and the classes they enable.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := service.NewGeneratorService(cfg.DefaultLength, cfg.MaxLength)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			bold := color.New(color.Bold)
			bold.Fprintln(tw, "NAME\tLETTERS\tNUMBERS\tSYMBOLS")
			for _, p := range svc.Presets() {
				if p.Name == "Custom" {
					fmt.Fprintf(tw, "%s\t-\t-\t-\n", p.Name)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, yesNo(p.Letters), yesNo(p.Numbers), yesNo(p.Symbols))
			}
			return tw.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
