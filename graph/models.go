package graph

import (
	"time"
)

// Graph is the complete structure handed to the visualization frontend.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
	Meta  Meta   `json:"meta"`
}

// Node is a single ontology identifier, either a class or an instance.
type Node struct {
	ID      string `json:"id"`
	Type    string `json:"type"` // "class" or "instance"
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
	Group   int    `json:"group,omitempty"` // coloring bucket per node type
}

// Link is one stored edge, or an instance assignment rendered as an edge.
type Link struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Type   string  `json:"type"` // relation name, e.g. "is_a"
	Weight float64 `json:"value"`
	Label  string  `json:"label,omitempty"`
}

// Meta carries generation metadata and the type legends the frontend
// needs to build its controls.
type Meta struct {
	GeneratedAt       time.Time              `json:"generated_at"`
	Stats             Stats                  `json:"stats"`
	Config            map[string]string      `json:"config"`
	NodeTypes         []NodeTypeInfo         `json:"node_types"`
	RelationshipTypes []RelationshipTypeInfo `json:"relationship_types"`
}

// NodeTypeInfo describes one node type with its visual configuration.
type NodeTypeInfo struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
	Count int    `json:"count,omitempty"`
}

// RelationshipTypeInfo describes one relation with its visual and
// physics configuration.
type RelationshipTypeInfo struct {
	Type         string   `json:"type"`
	Label        string   `json:"label"`
	Color        string   `json:"color,omitempty"`
	LinkDistance *float64 `json:"link_distance,omitempty"`
	LinkStrength *float64 `json:"link_strength,omitempty"`
	Count        int      `json:"count,omitempty"`
}

// Stats summarizes the exported graph.
type Stats struct {
	TotalNodes int `json:"total_nodes,omitempty"`
	TotalEdges int `json:"total_edges,omitempty"`
}
