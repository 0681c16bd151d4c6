package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PavelShpagin/ontos/cmd/ontos/commands"
	"github.com/PavelShpagin/ontos/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ontos",
	Short: "ontos - in-memory ontology knowledge base and reasoner",
	Long: `ontos loads a seed ontology into an immutable in-memory knowledge base
and answers reasoning questions over it: taxonomy subsumption,
transitive composition, prerequisites, relation paths and undirected
connectivity. Terms resolve through a per-seed alias table, so
questions work in the seed's natural language too.

Examples:
  ontos isa dog animal            # taxonomy subsumption
  ontos isa собака тварина        # the same, through aliases
  ontos path dog animal           # labeled relation chain
  ontos connected dog fur         # undirected witness chain
  ontos haspart vertebrate eye -t # inferred part ownership
  ontos audit                     # structural floors check
  ontos repl                      # interactive question loop
  ontos server                    # websocket graph visualization`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringP("seed", "s", "", "Seed ontology to load (default from config)")

	rootCmd.AddCommand(commands.IsaCmd)
	rootCmd.AddCommand(commands.PartCmd)
	rootCmd.AddCommand(commands.DepCmd)
	rootCmd.AddCommand(commands.HasPartCmd)
	rootCmd.AddCommand(commands.PathCmd)
	rootCmd.AddCommand(commands.ConnectedCmd)
	rootCmd.AddCommand(commands.InstancesCmd)
	rootCmd.AddCommand(commands.ClassOfCmd)
	rootCmd.AddCommand(commands.AuditCmd)
	rootCmd.AddCommand(commands.DemoCmd)
	rootCmd.AddCommand(commands.ReplCmd)
	rootCmd.AddCommand(commands.GraphCmd)
	rootCmd.AddCommand(commands.ServerCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
