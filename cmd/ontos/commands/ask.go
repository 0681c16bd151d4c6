package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/PavelShpagin/ontos/display"
	"github.com/PavelShpagin/ontos/sym"
)

// verdict is the JSON shape every boolean question answers with.
type verdict struct {
	Op     string `json:"op"`
	From   string `json:"from"`
	To     string `json:"to"`
	Result bool   `json:"result"`
}

// IsaCmd answers taxonomy subsumption questions.
var IsaCmd = &cobra.Command{
	Use:   "isa <child> <ancestor>",
	Short: "Check whether one class subsumes another",
	Long: `Check whether the first term reaches the second over is_a edges.
Instances are lifted to their class first, so "isa rex animal" works.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := LoadRuntime(cmd)
		if err != nil {
			return err
		}
		from, to, err := resolvePair(rt, args[0], args[1])
		if err != nil {
			return err
		}
		return renderVerdict(cmd, verdict{
			Op:     "is_a",
			From:   from,
			To:     to,
			Result: rt.Facade.IsA(from, to),
		})
	},
}

// PartCmd answers transitive composition questions.
var PartCmd = &cobra.Command{
	Use:   "part <part> <whole>",
	Short: "Check whether one thing is part of another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := LoadRuntime(cmd)
		if err != nil {
			return err
		}
		from, to, err := resolvePair(rt, args[0], args[1])
		if err != nil {
			return err
		}
		return renderVerdict(cmd, verdict{
			Op:     "part_of",
			From:   from,
			To:     to,
			Result: rt.Facade.PartOf(from, to),
		})
	},
}

// DepCmd answers transitive prerequisite questions.
var DepCmd = &cobra.Command{
	Use:   "dep <a> <b>",
	Short: "Check whether one topic depends on another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := LoadRuntime(cmd)
		if err != nil {
			return err
		}
		from, to, err := resolvePair(rt, args[0], args[1])
		if err != nil {
			return err
		}
		return renderVerdict(cmd, verdict{
			Op:     "depends_on",
			From:   from,
			To:     to,
			Result: rt.Facade.DependsOn(from, to),
		})
	},
}

// HasPartCmd answers the inverse composition question.
var HasPartCmd = &cobra.Command{
	Use:   "haspart <whole> <part>",
	Short: "Check whether a class has a given part",
	Long: `Check whether the class carries the part. Direct by default;
--transitive also descends nested parts and subclasses, so a vertebrate
head implies a dog head.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := LoadRuntime(cmd)
		if err != nil {
			return err
		}
		from, to, err := resolvePair(rt, args[0], args[1])
		if err != nil {
			return err
		}

		transitive, _ := cmd.Flags().GetBool("transitive")
		result := rt.Facade.HasPart(from, to)
		if transitive {
			result = rt.Facade.HasPartTransitive(from, to)
		}
		return renderVerdict(cmd, verdict{
			Op:     "has_part",
			From:   from,
			To:     to,
			Result: result,
		})
	},
}

func init() {
	HasPartCmd.Flags().BoolP("transitive", "t", false, "Descend nested parts and subclasses")
}

func resolvePair(rt *Runtime, a, b string) (string, string, error) {
	terms, err := rt.Resolver.ResolveAll(a, b)
	if err != nil {
		return "", "", err
	}
	return terms[0], terms[1], nil
}

func renderVerdict(cmd *cobra.Command, v verdict) error {
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(v)
	}

	glyph := sym.ForRelation(v.Op)
	if v.Result {
		pterm.Success.Printfln("%s %s %s", v.From, glyph, v.To)
	} else {
		pterm.Info.Printfln("no: %s %s %s does not hold", v.From, glyph, v.To)
	}
	return nil
}
