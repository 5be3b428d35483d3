/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// NodeMap is an ordered mapping of node id to node entry.
// JSON object order is preserved on decode and encode, since
// collection order decides which node wins a key collision.
type NodeMap struct {
	ids     []string
	entries map[string]*NodeEntry
}

// NewNodeMap creates an empty node map.
func NewNodeMap() *NodeMap {
	return &NodeMap{entries: make(map[string]*NodeEntry)}
}

// Set stores an entry. A nil entry records an id Figma could not resolve.
func (m *NodeMap) Set(id string, entry *NodeEntry) {
	if m.entries == nil {
		m.entries = make(map[string]*NodeEntry)
	}
	if _, exists := m.entries[id]; !exists {
		m.ids = append(m.ids, id)
	}
	m.entries[id] = entry
}

// Add stores a node under its own id.
func (m *NodeMap) Add(node *Node) {
	m.Set(node.ID, &NodeEntry{Document: node})
}

// Get returns the entry for id.
func (m *NodeMap) Get(id string) (*NodeEntry, bool) {
	if m == nil {
		return nil, false
	}
	e, ok := m.entries[id]
	return e, ok
}

// Len returns the number of ids in the map, including unresolved ones.
func (m *NodeMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.ids)
}

// IDs returns the ids in order.
func (m *NodeMap) IDs() []string {
	if m == nil {
		return nil
	}
	ids := make([]string, len(m.ids))
	copy(ids, m.ids)
	return ids
}

// Nodes returns the resolved documents in order, skipping unresolved ids.
func (m *NodeMap) Nodes() []*Node {
	if m == nil {
		return nil
	}
	nodes := make([]*Node, 0, len(m.ids))
	for _, id := range m.ids {
		if e := m.entries[id]; e != nil && e.Document != nil {
			nodes = append(nodes, e.Document)
		}
	}
	return nodes
}

// SortedByName returns the resolved documents ordered by raw name.
// The sort is stable, so equal names keep collection order.
func (m *NodeMap) SortedByName() []*Node {
	nodes := m.Nodes()
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Name < nodes[j].Name
	})
	return nodes
}

// Unresolved returns the ids whose entry or document is null.
func (m *NodeMap) Unresolved() []string {
	if m == nil {
		return nil
	}
	var ids []string
	for _, id := range m.ids {
		if e := m.entries[id]; e == nil || e.Document == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (m *NodeMap) UnmarshalJSON(data []byte) error {
	*m = NodeMap{entries: make(map[string]*NodeEntry)}

	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("node map must be a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("node map key must be a string, got %v", keyTok)
		}
		var entry *NodeEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("node %s: %w", id, err)
		}
		m.Set(id, entry)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *NodeMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m != nil {
		for i, id := range m.ids {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(id)
			if err != nil {
				return nil, err
			}
			value, err := json.Marshal(m.entries[id])
			if err != nil {
				return nil, fmt.Errorf("node %s: %w", id, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
