package sand

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type elementOverride struct {
	Density            *float64 `toml:"density"`
	Lifetime           *int     `toml:"lifetime"`
	IgnitionResistance *float64 `toml:"ignition_resistance"`
}

type catalogFile struct {
	Elements map[string]elementOverride `toml:"elements"`
}

// applyCatalogFile loads per-element overrides from a TOML file and patches
// the descriptors in place. It must run before the registry freezes; nothing
// mutates elements after that point.
func applyCatalogFile(path string, elems []*Element) error {
	var cf catalogFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return fmt.Errorf("decode catalog file: %w", err)
	}
	byName := make(map[string]*Element, len(elems))
	for _, e := range elems {
		byName[e.Name] = e
	}
	for name, ov := range cf.Elements {
		e, ok := byName[name]
		if !ok {
			return fmt.Errorf("catalog override for unknown element %q", name)
		}
		if ov.Density != nil {
			e.Density = *ov.Density
		}
		if ov.Lifetime != nil {
			e.DefaultLifetime = *ov.Lifetime
		}
		if ov.IgnitionResistance != nil {
			r := *ov.IgnitionResistance
			if r < 0 || r > 1 {
				return fmt.Errorf("element %q: ignition_resistance %v outside [0,1]", name, r)
			}
			e.IgnitionResistance = r
		}
	}
	return nil
}
