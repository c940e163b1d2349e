package inventory

import "encoding/json"

// asMap flattens the inventory into the Ansible dynamic-inventory layout:
// each group name at the top level, plus _meta.hostvars when enabled.
func (inv *Inventory) asMap() map[string]any {
	out := make(map[string]any, len(inv.groups)+1)

	for name, group := range inv.groups {
		out[name] = group
	}

	if inv.meta {
		out["_meta"] = map[string]any{"hostvars": inv.hostvars}
	}

	return out
}

// MarshalJSON implements json.Marshaler.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.asMap())
}

// MarshalYAML implements the yaml marshaler interface of goccy/go-yaml.
func (inv *Inventory) MarshalYAML() (any, error) {
	return inv.asMap(), nil
}
