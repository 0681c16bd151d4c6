// Package seed ships the embedded ontologies the binary loads at
// startup: the animal taxonomy with its Ukrainian alias table, and the
// computer-science curriculum. Each seed is a YAML document of plain
// edge lists plus the audit policy its construction must pass; loading
// is construction-time only, after which the store is read-only.
package seed

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/PavelShpagin/ontos/alias"
	"github.com/PavelShpagin/ontos/audit"
	"github.com/PavelShpagin/ontos/errors"
	"github.com/PavelShpagin/ontos/kb"
)

//go:embed animals.yaml
var animalsYAML []byte

//go:embed curriculum.yaml
var curriculumYAML []byte

// Seed names accepted by Load.
const (
	Animals    = "animals"
	Curriculum = "curriculum"
)

// Names lists the available seed ontologies.
func Names() []string {
	return []string{Animals, Curriculum}
}

type document struct {
	Name        string            `yaml:"name"`
	IsA         [][]string        `yaml:"is_a"`
	PartOf      [][]string        `yaml:"part_of"`
	DependsOn   [][]string        `yaml:"depends_on"`
	HasProperty [][]string        `yaml:"has_property"`
	Instances   [][]string        `yaml:"instances"`
	Aliases     map[string]string `yaml:"aliases"`
	Audit       auditSection      `yaml:"audit"`
}

type auditSection struct {
	MinClasses       int      `yaml:"min_classes"`
	DepthRoot        string   `yaml:"depth_root"`
	MinDepth         int      `yaml:"min_depth"`
	MinLeafInstances int      `yaml:"min_leaf_instances"`
	LeafClasses      []string `yaml:"leaf_classes"`
}

// Load builds the named seed ontology, audits it against the policy the
// seed declares, and returns the store with its alias resolver. Audit
// failure fails the load: a seed that does not pass its own floors is a
// packaging bug, not a runtime condition.
func Load(name string) (*kb.Store, *alias.Resolver, audit.Policy, error) {
	doc, err := parse(name)
	if err != nil {
		return nil, nil, audit.Policy{}, err
	}

	store, err := build(doc)
	if err != nil {
		return nil, nil, audit.Policy{}, errors.Wrapf(err, "seed %q", name)
	}

	policy := audit.Policy{
		MinClasses:       doc.Audit.MinClasses,
		DepthRoot:        doc.Audit.DepthRoot,
		MinDepth:         doc.Audit.MinDepth,
		MinLeafInstances: doc.Audit.MinLeafInstances,
		LeafClasses:      doc.Audit.LeafClasses,
	}
	if err := audit.Check(store, policy); err != nil {
		return nil, nil, audit.Policy{}, errors.Wrapf(err, "seed %q failed its audit", name)
	}

	return store, alias.NewResolver(doc.Aliases, store), policy, nil
}

func parse(name string) (*document, error) {
	var raw []byte
	switch name {
	case Animals:
		raw = animalsYAML
	case Curriculum:
		raw = curriculumYAML
	default:
		return nil, errors.WithHintf(errors.Newf("unknown seed ontology %q", name),
			"available seeds: %v", Names())
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode seed %q", name)
	}
	return &doc, nil
}

func build(doc *document) (*kb.Store, error) {
	store := kb.NewStore()

	sections := []struct {
		rel   kb.Relation
		pairs [][]string
	}{
		{kb.RelIsA, doc.IsA},
		{kb.RelPartOf, doc.PartOf},
		{kb.RelDependsOn, doc.DependsOn},
		{kb.RelHasProperty, doc.HasProperty},
	}
	for _, section := range sections {
		for _, pair := range section.pairs {
			if len(pair) != 2 {
				return nil, errors.Newf("%s edge must be a [source, target] pair, got %v", section.rel, pair)
			}
			if err := store.AddEdge(section.rel, pair[0], pair[1]); err != nil {
				return nil, err
			}
		}
	}

	for _, pair := range doc.Instances {
		if len(pair) != 2 {
			return nil, errors.Newf("instance entry must be an [instance, class] pair, got %v", pair)
		}
		if err := store.AddInstance(pair[0], pair[1]); err != nil {
			return nil, err
		}
	}

	return store, nil
}
