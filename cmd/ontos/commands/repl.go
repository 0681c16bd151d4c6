package commands

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/PavelShpagin/ontos/errors"
	"github.com/PavelShpagin/ontos/sym"
)

// ReplCmd runs an interactive question loop over the loaded ontology.
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive question loop over the loaded ontology",
	Long: `Read questions from stdin, one per line, until EOF or "exit". Terms with
spaces are quoted shell-style, e.g.:

  » isa "Finite Automata" "Computer Science"
  » connected собака шерсть
  » instances dog`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := LoadRuntime(cmd)
		if err != nil {
			return err
		}

		pterm.Info.Printfln("%s seed %q loaded: %d classes, %d instances. Type \"help\" for commands.",
			sym.KB, rt.SeedName, rt.Store.ClassCount(), rt.Store.InstanceCount())

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Printf("%s ", sym.Repl)
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				break
			}

			if err := evalLine(rt, line); err != nil {
				pterm.Error.Println(err.Error())
			}
		}
		return scanner.Err()
	},
}

// evalLine tokenizes and dispatches one REPL line.
func evalLine(rt *Runtime, line string) error {
	words, err := shellquote.Split(line)
	if err != nil {
		return errors.Wrap(err, "unbalanced quoting")
	}
	if len(words) == 0 {
		return nil
	}

	op, args := words[0], words[1:]
	switch op {
	case "help":
		printReplHelp()
		return nil
	case "classes":
		return printColumns(rt.Store.Classes())
	case "relations":
		for _, line := range sortedGlyphs() {
			pterm.Println("  " + line)
		}
		return nil
	case "aliases":
		if len(args) != 1 {
			return errors.New("usage: aliases <term>")
		}
		canonical, err := rt.Resolver.Resolve(args[0])
		if err != nil {
			return err
		}
		pterm.Printfln("  %s: %v", canonical, rt.Resolver.AliasesFor(canonical))
		return nil
	case "instances":
		if len(args) != 1 {
			return errors.New("usage: instances <class>")
		}
		class, err := rt.Resolver.Resolve(args[0])
		if err != nil {
			return err
		}
		return printColumns(rt.Store.InstancesOf(class))
	case "classof":
		if len(args) != 1 {
			return errors.New("usage: classof <instance>")
		}
		instance, err := rt.Resolver.Resolve(args[0])
		if err != nil {
			return err
		}
		class, ok := rt.Store.ClassOf(instance)
		if !ok {
			return errors.Newf("%q is not an instance", instance)
		}
		pterm.Success.Printfln("%s %s %s", instance, sym.InstanceOf, class)
		return nil
	}

	// remaining ops are binary questions
	if len(args) != 2 {
		return errors.Newf("usage: %s <a> <b>", op)
	}
	from, to, err := resolvePair(rt, args[0], args[1])
	if err != nil {
		return err
	}

	switch op {
	case "isa":
		renderReplVerdict(from, "is_a", to, rt.Facade.IsA(from, to))
	case "part":
		renderReplVerdict(from, "part_of", to, rt.Facade.PartOf(from, to))
	case "dep":
		renderReplVerdict(from, "depends_on", to, rt.Facade.DependsOn(from, to))
	case "haspart":
		renderReplVerdict(from, "has_part", to, rt.Facade.HasPartTransitive(from, to))
	case "path":
		path := rt.Facade.Path(from, to)
		renderPath(pathResult{From: from, To: to, Found: path != nil, Path: path})
	case "connected":
		path := rt.Facade.ConnectedPath(from, to)
		renderPath(pathResult{From: from, To: to, Found: path != nil, Path: path})
	default:
		return errors.Newf("unknown command %q, try \"help\"", op)
	}
	return nil
}

func renderReplVerdict(from, rel, to string, result bool) {
	glyph := sym.ForRelation(rel)
	if result {
		pterm.Success.Printfln("yes: %s %s %s", from, glyph, to)
	} else {
		pterm.Info.Printfln("no: %s %s %s does not hold", from, glyph, to)
	}
}

func printReplHelp() {
	pterm.Println(`  isa <child> <ancestor>    taxonomy subsumption
  part <part> <whole>       transitive composition
  dep <a> <b>               transitive prerequisite
  haspart <whole> <part>    inferred part ownership
  path <from> <to>          directed relation chain
  connected <a> <b>         undirected connectivity with witness
  instances <class>         instances assigned to a class
  classof <instance>        class of an instance
  classes                   list all classes
  relations                 list relations and their glyphs
  aliases <term>            aliases of a canonical term
  exit                      leave the repl`)
}

func printColumns(items []string) error {
	if len(items) == 0 {
		pterm.Info.Println("none")
		return nil
	}
	for _, item := range items {
		pterm.Println("  " + item)
	}
	return nil
}

func sortedGlyphs() []string {
	var lines []string
	for name, glyph := range sym.RelationGlyphs {
		lines = append(lines, fmt.Sprintf("%s  %s", glyph, name))
	}
	sort.Strings(lines)
	return lines
}
