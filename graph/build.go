// Package graph exports the knowledge base as a force-directed graph
// structure for the visualization frontend. The export is a read-only
// projection: every class and instance becomes a node, every stored
// edge a typed link, and instance assignments are rendered as
// instance_of links so the frontend can draw the full picture.
package graph

import (
	"fmt"
	"sort"
	"time"

	"github.com/PavelShpagin/ontos/kb"
)

const defaultLinkWeight = 1.0

// styling defaults per relation, keyed for the frontend legend
var relationStyles = map[kb.Relation]struct {
	label    string
	color    string
	distance float64
	strength float64
}{
	kb.RelIsA:         {"Is A", "#4C9AFF", 60, 0.7},
	kb.RelPartOf:      {"Part Of", "#36B37E", 80, 0.5},
	kb.RelDependsOn:   {"Depends On", "#FFAB00", 100, 0.3},
	kb.RelHasProperty: {"Has Property", "#6554C0", 90, 0.4},
	kb.RelInstanceOf:  {"Instance Of", "#8993A4", 50, 0.8},
}

var nodeTypeColors = map[string]string{
	"class":    "#0052CC",
	"instance": "#00875A",
}

// Build converts the store into a visualization graph. Output is
// deterministic: nodes and links are sorted by ID so repeated exports
// of the same store are byte-identical.
func Build(s *kb.Store, description string) *Graph {
	g := &Graph{
		Nodes: []Node{},
		Links: []Link{},
		Meta: Meta{
			GeneratedAt: time.Now(),
			Config: map[string]string{
				"description": description,
			},
		},
	}

	for _, class := range s.Classes() {
		g.Nodes = append(g.Nodes, Node{
			ID:      class,
			Type:    "class",
			Label:   class,
			Visible: true,
			Group:   1,
		})
	}
	for _, instance := range s.Instances() {
		g.Nodes = append(g.Nodes, Node{
			ID:      instance,
			Type:    "instance",
			Label:   instance,
			Visible: true,
			Group:   2,
		})
	}
	sort.Slice(g.Nodes, func(i, j int) bool { return g.Nodes[i].ID < g.Nodes[j].ID })

	for _, rel := range kb.Relations() {
		for _, source := range s.Sources(rel) {
			for _, target := range s.Neighbors(rel, source) {
				g.Links = append(g.Links, Link{
					Source: source,
					Target: target,
					Type:   string(rel),
					Weight: defaultLinkWeight,
					Label:  string(rel),
				})
			}
		}
	}
	for _, instance := range s.Instances() {
		class, ok := s.ClassOf(instance)
		if !ok {
			continue
		}
		g.Links = append(g.Links, Link{
			Source: instance,
			Target: class,
			Type:   string(kb.RelInstanceOf),
			Weight: defaultLinkWeight,
			Label:  string(kb.RelInstanceOf),
		})
	}
	sort.Slice(g.Links, func(i, j int) bool {
		return linkKey(g.Links[i]) < linkKey(g.Links[j])
	})

	g.Meta.Stats.TotalNodes = len(g.Nodes)
	g.Meta.Stats.TotalEdges = len(g.Links)
	g.Meta.NodeTypes = collectNodeTypeInfo(g.Nodes)
	g.Meta.RelationshipTypes = collectRelationshipTypeInfo(g.Links)

	return g
}

func linkKey(l Link) string {
	return fmt.Sprintf("%s_%s_%s", l.Source, l.Type, l.Target)
}

// collectNodeTypeInfo builds the node type legend with per-type counts.
func collectNodeTypeInfo(nodes []Node) []NodeTypeInfo {
	counts := make(map[string]int)
	for _, node := range nodes {
		counts[node.Type]++
	}

	var infos []NodeTypeInfo
	for nodeType, count := range counts {
		infos = append(infos, NodeTypeInfo{
			Type:  nodeType,
			Label: nodeType,
			Color: nodeTypeColors[nodeType],
			Count: count,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Type < infos[j].Type })
	return infos
}

// collectRelationshipTypeInfo builds the relation legend with physics
// overrides and per-relation counts.
func collectRelationshipTypeInfo(links []Link) []RelationshipTypeInfo {
	counts := make(map[string]int)
	for _, link := range links {
		counts[link.Type]++
	}

	var infos []RelationshipTypeInfo
	for linkType, count := range counts {
		info := RelationshipTypeInfo{
			Type:  linkType,
			Label: linkType,
			Count: count,
		}
		if style, ok := relationStyles[kb.Relation(linkType)]; ok {
			distance, strength := style.distance, style.strength
			info.Label = style.label
			info.Color = style.color
			info.LinkDistance = &distance
			info.LinkStrength = &strength
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Type < infos[j].Type })
	return infos
}
