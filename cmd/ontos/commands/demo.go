package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/PavelShpagin/ontos/seed"
	"github.com/PavelShpagin/ontos/sym"
)

// demoQuery is one line of the scripted tour.
type demoQuery struct {
	op   string
	from string
	to   string
}

// per-seed scripts; terms may be aliases to show resolution at work
var demoScripts = map[string][]demoQuery{
	seed.Animals: {
		{"is_a", "dog", "animal"},
		{"is_a", "собака", "entity"},
		{"is_a", "dog", "bird"},
		{"part_of", "eye", "vertebrate"},
		{"part_of", "хвіст", "mammal"},
		{"has_part", "vertebrate", "eye"},
		{"path", "dog", "animal"},
		{"connected", "dog", "fur"},
		{"connected", "rex", "bim"},
	},
	seed.Curriculum: {
		{"is_a", "Finite Automata", "Computer Science"},
		{"is_a", "ML", "Artificial Intelligence"},
		{"depends_on", "Parsing", "Context-Free Grammars"},
		{"depends_on", "Lexical Analysis", "Finite Automata"},
		{"part_of", "CPU Scheduling", "Operating Systems"},
		{"path", "Transport Layer", "Computer Networks"},
		{"connected", "Dijkstra", "Binary heap"},
	},
}

// DemoCmd walks a scripted tour of the loaded ontology.
var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted tour of the loaded ontology",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := LoadRuntime(cmd)
		if err != nil {
			return err
		}

		script, ok := demoScripts[rt.SeedName]
		if !ok {
			script = demoScripts[seed.Animals]
		}

		pterm.DefaultHeader.Printfln("%s ontos demo — seed %q", sym.KB, rt.SeedName)
		pterm.Printfln("  %d classes, %d instances, %d edges",
			rt.Store.ClassCount(), rt.Store.InstanceCount(), rt.Store.EdgeCount())
		pterm.Println()

		for _, q := range script {
			from, to, err := resolvePair(rt, q.from, q.to)
			if err != nil {
				pterm.Error.Printfln("%s(%s, %s): %v", q.op, q.from, q.to, err)
				continue
			}

			switch q.op {
			case "is_a":
				renderDemoVerdict(q, from, to, rt.Facade.IsA(from, to))
			case "part_of":
				renderDemoVerdict(q, from, to, rt.Facade.PartOf(from, to))
			case "depends_on":
				renderDemoVerdict(q, from, to, rt.Facade.DependsOn(from, to))
			case "has_part":
				renderDemoVerdict(q, from, to, rt.Facade.HasPartTransitive(from, to))
			case "path":
				path := rt.Facade.Path(from, to)
				renderPath(pathResult{From: from, To: to, Found: path != nil, Path: path})
			case "connected":
				path := rt.Facade.ConnectedPath(from, to)
				renderPath(pathResult{From: from, To: to, Found: path != nil, Path: path})
			}
		}
		return nil
	},
}

func renderDemoVerdict(q demoQuery, from, to string, result bool) {
	glyph := sym.ForRelation(q.op)
	if result {
		pterm.Success.Printfln("%s(%s, %s): yes  %s %s %s", q.op, q.from, q.to, from, glyph, to)
	} else {
		pterm.Info.Printfln("%s(%s, %s): no", q.op, q.from, q.to)
	}
}
