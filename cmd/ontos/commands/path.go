package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/PavelShpagin/ontos/display"
	"github.com/PavelShpagin/ontos/infer"
	"github.com/PavelShpagin/ontos/sym"
)

type pathResult struct {
	From  string       `json:"from"`
	To    string       `json:"to"`
	Found bool         `json:"found"`
	Path  []infer.Step `json:"path,omitempty"`
}

// PathCmd finds a directed relation chain between two terms.
var PathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Find a directed relation chain between two terms",
	Long: `Search the stored edge directions for a chain from the first term to
the second, across all relations at once. Shortest chain wins.`,
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

		path := rt.Facade.Path(from, to)
		result := pathResult{From: from, To: to, Found: path != nil, Path: path}

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(result)
		}
		renderPath(result)
		return nil
	},
}

// ConnectedCmd checks undirected connectivity.
var ConnectedCmd = &cobra.Command{
	Use:   "connected <a> <b>",
	Short: "Check whether two terms share a graph component",
	Long: `Check whether any chain of edges joins the two terms, ignoring edge
direction. Prints a witness chain when one exists; reversed hops are
marked with the relation glyph on the left of the arrow.`,
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

		path := rt.Facade.ConnectedPath(from, to)
		result := pathResult{From: from, To: to, Found: path != nil, Path: path}

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(result)
		}
		renderPath(result)
		return nil
	},
}

func renderPath(result pathResult) {
	if !result.Found {
		pterm.Info.Printfln("no path from %s to %s", result.From, result.To)
		return
	}
	if len(result.Path) == 0 {
		pterm.Success.Printfln("%s %s %s (same term)", result.From, sym.Path, result.To)
		return
	}
	pterm.Success.Printfln("%s %s %s (%d steps)", result.From, sym.Path, result.To, len(result.Path))
	pterm.Println("  " + FormatChain(result.Path))
}

// FormatChain renders a step chain as a single arrow line, e.g.
// "dog ⊑→ canine ⊑→ mammal". Reversed hops put the glyph after the
// arrow to show the stored edge points the other way.
func FormatChain(path []infer.Step) string {
	if len(path) == 0 {
		return ""
	}

	// a reversed step stores the edge as written, so the walk goes
	// target-to-source for those hops
	walkFrom := func(s infer.Step) string {
		if s.Reversed {
			return s.Target
		}
		return s.Source
	}
	walkTo := func(s infer.Step) string {
		if s.Reversed {
			return s.Source
		}
		return s.Target
	}

	var b strings.Builder
	b.WriteString(walkFrom(path[0]))
	for _, step := range path {
		glyph := sym.ForRelation(string(step.Relation))
		if step.Reversed {
			b.WriteString(" ←" + glyph + " ")
		} else {
			b.WriteString(" " + glyph + "→ ")
		}
		b.WriteString(walkTo(step))
	}
	return b.String()
}
