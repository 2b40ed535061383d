package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quantimg/featplan/internal/app"
	"github.com/quantimg/featplan/internal/core/domain"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <run-file>",
		Short: "Analyze a run file and print its deduplication plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Plan(args[0])
			if err != nil {
				return err
			}
			return printPlan(cmd, res)
		},
	}
}

func printPlan(cmd *cobra.Command, res *app.PlanResult) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Rule set: %s\n", res.RuleSet.Version())
	fmt.Fprintf(out, "Plan:     %s\n\n", res.Plan.RunID())

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CONFIGURATION\tFAMILY\tACTION\tSOURCE")
	for _, name := range res.Plan.Configurations() {
		instructions := res.Plan.PlanFor(name)
		for _, family := range res.Plan.Families() {
			in, ok := instructions[family]
			if !ok {
				continue
			}
			switch in.Action {
			case domain.ActionComputeFresh:
				fmt.Fprintf(w, "%s\t%s\tcompute\t\n", name, family)
			case domain.ActionReuse:
				fmt.Fprintf(w, "%s\t%s\treuse\t%s\n", name, family, in.Producer)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	summary := res.Plan.Summary()
	fmt.Fprintf(out, "\nSummary: %d requests, %d computations avoided\n",
		summary.TotalRequests, summary.Avoided)
	for _, family := range summary.Families {
		fs := summary.PerFamily[family]
		fmt.Fprintf(out, "  %s: %d requests, %d distinct, %d avoided\n",
			family, fs.Requests, fs.DistinctSignatures, fs.Avoided)
	}
	return nil
}
