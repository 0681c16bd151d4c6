package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/PavelShpagin/ontos/audit"
	"github.com/PavelShpagin/ontos/config"
	"github.com/PavelShpagin/ontos/display"
	"github.com/PavelShpagin/ontos/sym"
)

// AuditCmd re-runs the structural audit against the loaded seed,
// with optional floor overrides from configuration.
var AuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the structural audit over the loaded ontology",
	Long: `Re-check the structural floors the seed was admitted under: the class
count, the taxonomy depth below the root, and the instance floor for
leaf classes. Config [audit] overrides tighten the seed's own policy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := LoadRuntime(cmd)
		if err != nil {
			return err
		}

		policy := rt.Policy
		if cfg, err := config.Load(); err == nil {
			if cfg.Audit.MinClasses > 0 {
				policy.MinClasses = cfg.Audit.MinClasses
			}
			if cfg.Audit.MinDepth > 0 {
				policy.MinDepth = cfg.Audit.MinDepth
			}
			if cfg.Audit.MinLeafInstances > 0 {
				policy.MinLeafInstances = cfg.Audit.MinLeafInstances
			}
		}

		auditErr := audit.Check(rt.Store, policy)
		depth := audit.MaxDepthFrom(rt.Store, policy.DepthRoot)

		if display.ShouldOutputJSON(cmd) {
			out := map[string]interface{}{
				"seed":      rt.SeedName,
				"ok":        auditErr == nil,
				"classes":   rt.Store.ClassCount(),
				"instances": rt.Store.InstanceCount(),
				"edges":     rt.Store.EdgeCount(),
				"depth":     depth,
				"policy":    policy,
			}
			if auditErr != nil {
				out["error"] = auditErr.Error()
			}
			return display.OutputJSON(out)
		}

		pterm.Info.Printfln("%s seed %q: %d classes, %d instances, %d edges, depth %d under %q",
			sym.KB, rt.SeedName, rt.Store.ClassCount(), rt.Store.InstanceCount(),
			rt.Store.EdgeCount(), depth, policy.DepthRoot)
		if auditErr != nil {
			pterm.Error.Printfln("audit failed: %v", auditErr)
			return auditErr
		}
		pterm.Success.Printfln("%s audit passed", sym.Audit)
		return nil
	},
}
