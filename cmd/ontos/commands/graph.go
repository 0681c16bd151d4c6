package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/PavelShpagin/ontos/display"
	"github.com/PavelShpagin/ontos/errors"
	"github.com/PavelShpagin/ontos/graph"
)

// GraphCmd exports the loaded ontology as a visualization graph.
var GraphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the loaded ontology as a visualization graph",
	Long: `Export the knowledge base in the JSON shape the graph frontend
consumes: typed nodes, labeled links, and the relation legend. Writes
to stdout unless --out names a file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := LoadRuntime(cmd)
		if err != nil {
			return err
		}

		g := graph.Build(rt.Store, fmt.Sprintf("seed ontology %q", rt.SeedName))
		data, err := display.MarshalJSON(g)
		if err != nil {
			return errors.Wrap(err, "failed to marshal graph")
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(out, data, 0o644); err != nil {
			return errors.Wrapf(err, "failed to write graph to %s", out)
		}
		pterm.Success.Printfln("wrote %d nodes and %d links to %s",
			g.Meta.Stats.TotalNodes, g.Meta.Stats.TotalEdges, out)
		return nil
	},
}

func init() {
	GraphCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
}
