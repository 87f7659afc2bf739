package bundle

import (
	"fmt"

	"modelkit/pkg/types"
)

// DefaultFamily is used when no family label is given or the label is unknown.
const DefaultFamily = types.FamilyGemma3

var familyDefaults = map[types.Family]types.TokenConfig{
	types.FamilyGemma: {
		StartToken: "<bos>",
		StopTokens: []string{"<eos>"},
	},
	types.FamilyGemma2: {
		StartToken: "<bos>",
		StopTokens: []string{"<eos>", "<end_of_turn>"},
	},
	types.FamilyGemma3: {
		StartToken: "<bos>",
		StopTokens: []string{"<eos>", "<end_of_turn>"},
	},
}

// DefaultsFor returns the token defaults for family, falling back to
// DefaultFamily for unknown labels. The result is a copy.
func DefaultsFor(family types.Family) types.TokenConfig {
	cfg, ok := familyDefaults[family]
	if !ok {
		cfg = familyDefaults[DefaultFamily]
	}
	return cfg.Clone()
}

// ParseFamily validates a family label. Empty selects DefaultFamily.
func ParseFamily(s string) (types.Family, error) {
	if s == "" {
		return DefaultFamily, nil
	}
	f := types.Family(s)
	if _, ok := familyDefaults[f]; !ok {
		return "", fmt.Errorf("unknown model type %q (want one of %v)", s, types.Families)
	}
	return f, nil
}

// Resolve returns the effective token configuration for req. A non-empty
// override replaces the matching default field; stop tokens are never merged.
func Resolve(req types.BundleRequest) types.TokenConfig {
	cfg := DefaultsFor(req.Family)
	if req.StartToken != "" {
		cfg.StartToken = req.StartToken
	}
	if len(req.StopTokens) > 0 {
		cfg.StopTokens = append([]string(nil), req.StopTokens...)
	}
	return cfg
}
