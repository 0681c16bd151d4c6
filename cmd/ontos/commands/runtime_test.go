package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavelShpagin/ontos/alias"
	"github.com/PavelShpagin/ontos/audit"
	ontostest "github.com/PavelShpagin/ontos/internal/testing"
	"github.com/PavelShpagin/ontos/kb"
)

func TestLoadRuntimeUsesSeedFlag(t *testing.T) {
	store := ontostest.CreateTestStore(t)

	orig := loadSeed
	defer func() { loadSeed = orig }()

	var loaded string
	loadSeed = func(name string) (*kb.Store, *alias.Resolver, audit.Policy, error) {
		loaded = name
		return store, alias.NewResolver(nil, store), audit.Policy{}, nil
	}

	cmd := &cobra.Command{Use: "ask"}
	cmd.Flags().String("seed", "", "")
	require.NoError(t, cmd.Flags().Set("seed", "curriculum"))

	rt, err := LoadRuntime(cmd)
	require.NoError(t, err)

	assert.Equal(t, "curriculum", loaded)
	assert.Equal(t, "curriculum", rt.SeedName)
	assert.Same(t, store, rt.Store)
	assert.NotNil(t, rt.Facade)
	assert.NotNil(t, rt.Resolver)
}
