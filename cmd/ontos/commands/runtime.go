// Package commands implements the ontos CLI subcommands. Every command
// loads a seed ontology, resolves its term arguments through the alias
// table, and answers from the immutable in-memory knowledge base.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/PavelShpagin/ontos/alias"
	"github.com/PavelShpagin/ontos/audit"
	"github.com/PavelShpagin/ontos/config"
	"github.com/PavelShpagin/ontos/kb"
	"github.com/PavelShpagin/ontos/logger"
	"github.com/PavelShpagin/ontos/query"
	"github.com/PavelShpagin/ontos/seed"
)

// Runtime bundles the loaded knowledge base with its query surfaces.
type Runtime struct {
	SeedName string
	Store    *kb.Store
	Facade   *query.Facade
	Resolver *alias.Resolver
	Policy   audit.Policy
}

// loadSeed is swapped in tests to avoid re-parsing the embedded YAML
// for every command invocation.
var loadSeed = seed.Load

// LoadRuntime loads the seed named by --seed (falling back to the
// configured default) and wraps it in a Runtime.
func LoadRuntime(cmd *cobra.Command) (*Runtime, error) {
	name, _ := cmd.Flags().GetString("seed")
	if name == "" {
		name, _ = cmd.Root().PersistentFlags().GetString("seed")
	}
	if name == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		name = cfg.Seed.Name
	}

	store, resolver, policy, err := loadSeed(name)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		SeedName: name,
		Store:    store,
		Facade:   query.NewFacade(store, logger.Logger),
		Resolver: resolver,
		Policy:   policy,
	}, nil
}
