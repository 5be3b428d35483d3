/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/figtokens/fs"
)

// Snapshot is everything one extraction run reads from a Figma file:
// published styles and components, and the nodes they point at.
type Snapshot struct {
	// FileKey identifies the Figma file the snapshot was taken from.
	FileKey string `json:"fileKey,omitempty"`

	Styles         []Style     `json:"styles"`
	Components     []Component `json:"components"`
	StyleNodes     *NodeMap    `json:"styleNodes"`
	ComponentNodes *NodeMap    `json:"componentNodes"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		StyleNodes:     NewNodeMap(),
		ComponentNodes: NewNodeMap(),
	}
}

// ParseSnapshot decodes a snapshot. Comments and trailing commas are allowed.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	snap := NewSnapshot()
	if err := json.Unmarshal(jsonc.ToJSON(data), snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if snap.StyleNodes == nil {
		snap.StyleNodes = NewNodeMap()
	}
	if snap.ComponentNodes == nil {
		snap.ComponentNodes = NewNodeMap()
	}
	return snap, nil
}

// LoadSnapshot reads and decodes a snapshot file.
func LoadSnapshot(filesystem fs.FileSystem, path string) (*Snapshot, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	snap, err := ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// Encode serializes the snapshot as JSON, indented when indent is non-empty.
func (s *Snapshot) Encode(indent string) ([]byte, error) {
	if indent == "" {
		return json.Marshal(s)
	}
	return json.MarshalIndent(s, "", indent)
}
