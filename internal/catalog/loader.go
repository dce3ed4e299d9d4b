package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a catalog JSON document (a top-level array of card
// entries, each carrying a "kind" field) and returns a populated Registry.
// This lets a deployment swap in a new card set without a rebuild, the way
// the reference faction data is authored as JSON rather than Go literals.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	return LoadJSON(data)
}

// LoadJSON parses a catalog document from raw bytes.
func LoadJSON(data []byte) (*Registry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: parsing document: %w", err)
	}

	reg := NewRegistry()
	for i, entry := range raw {
		var head struct {
			Kind Kind `json:"kind"`
		}
		if err := json.Unmarshal(entry, &head); err != nil {
			return nil, fmt.Errorf("catalog: entry %d: %w", i, err)
		}

		var card Card
		switch head.Kind {
		case KindUnit:
			var uc UnitCard
			if err := json.Unmarshal(entry, &uc); err != nil {
				return nil, fmt.Errorf("catalog: entry %d (unit): %w", i, err)
			}
			card = uc
		case KindBlitz:
			var bc BlitzCard
			if err := json.Unmarshal(entry, &bc); err != nil {
				return nil, fmt.Errorf("catalog: entry %d (blitz): %w", i, err)
			}
			card = bc
		case KindStructure:
			var sc StructureCard
			if err := json.Unmarshal(entry, &sc); err != nil {
				return nil, fmt.Errorf("catalog: entry %d (structure): %w", i, err)
			}
			card = sc
		default:
			return nil, fmt.Errorf("catalog: entry %d: unknown kind %q", i, head.Kind)
		}

		if err := reg.add(card); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// MergeSeed adds the built-in seed cards (see data.go) to a registry,
// erroring on id collisions with anything already loaded.
func (r *Registry) MergeSeed() error {
	for _, c := range seedCards {
		if err := r.add(c); err != nil {
			return err
		}
	}
	return nil
}
