package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantimg/featplan/internal/core/rules"
)

func (c *CLI) newRulesetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rulesets",
		Short: "List the built-in dependency rule set versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, version := range rules.DefaultVersions() {
				rs, err := rules.Default(version)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%d families)\n", version, len(rs.Families()))
			}
			return nil
		},
	}
}
