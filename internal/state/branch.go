package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

const _parentField = "parent"

// Branch is the metadata recorded for a tracked branch.
//
// Fields written by other tools or versions are kept as-is
// and written back unchanged.
type Branch struct {
	// Parent is the branch this one is stacked on.
	// Empty if the branch has no tracked parent.
	Parent string

	extra map[string]json.RawMessage
}

var (
	_ json.Marshaler   = (*Branch)(nil)
	_ json.Unmarshaler = (*Branch)(nil)
)

// Clone returns a deep copy of the record.
func (b *Branch) Clone() *Branch {
	if b == nil {
		return nil
	}
	return &Branch{
		Parent: b.Parent,
		extra:  maps.Clone(b.extra),
	}
}

// ExtraFields lists the names of fields this package does not interpret.
func (b *Branch) ExtraFields() []string {
	return slices.Sorted(maps.Keys(b.extra))
}

// MarshalJSON encodes the record and any fields it does not interpret.
func (b *Branch) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(b.extra)+1)
	maps.Copy(fields, b.extra)

	parent, err := json.Marshal(b.Parent)
	if err != nil {
		return nil, fmt.Errorf("marshal parent: %w", err)
	}
	fields[_parentField] = parent

	return json.Marshal(fields)
}

// UnmarshalJSON decodes a record.
// Missing fields decode to their zero values.
func (b *Branch) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("unmarshal branch: %w", err)
	}

	*b = Branch{}
	if raw, ok := fields[_parentField]; ok {
		if !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			if err := json.Unmarshal(raw, &b.Parent); err != nil {
				return fmt.Errorf("unmarshal parent: %w", err)
			}
		}
		delete(fields, _parentField)
	}
	if len(fields) > 0 {
		b.extra = fields
	}
	return nil
}

// Records maps branch names to their metadata
// for a single repository.
type Records map[string]*Branch

// Clone returns a deep copy of the records.
func (r Records) Clone() Records {
	out := make(Records, len(r))
	for name, b := range r {
		out[name] = b.Clone()
	}
	return out
}

// Parents returns the parent of every tracked branch.
// Branches without a tracked parent map to "".
func (r Records) Parents() map[string]string {
	parents := make(map[string]string, len(r))
	for name, b := range r {
		parents[name] = b.Parent
	}
	return parents
}

// Names lists tracked branches in sorted order.
func (r Records) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// Rename moves the record for oldName to newName,
// keeping its uninterpreted fields.
// It does not touch records that name oldName as their parent.
func (r Records) Rename(oldName, newName string) {
	b, ok := r[oldName]
	if !ok {
		return
	}
	delete(r, oldName)
	r[newName] = b
}

// WithParents returns records that match the given parent mapping.
//
// Branches missing from parents are dropped,
// new branches get fresh records,
// and existing records keep their uninterpreted fields.
func (r Records) WithParents(parents map[string]string) Records {
	out := make(Records, len(parents))
	for name, parent := range parents {
		b := r[name].Clone()
		if b == nil {
			b = new(Branch)
		}
		b.Parent = parent
		out[name] = b
	}
	return out
}
