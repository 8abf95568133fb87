// Package scenario provides named parameter presets and scenario-file
// loading. Files overlay the baseline defaults, so a scenario only needs to
// state what it changes.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"

	"revenue_model/pkg/core/params"
)

func conservative() params.Bundle {
	b := params.Default()
	b.UserGrowth.MonthlyGrowthRate = 0.03
	b.UserGrowth.MonthlyChurnRate = 0.05
	b.UserGrowth.EngagementRate = 0.50
	b.Partnership.Tier = params.TierBasic
	b.Partnership.PartnerCount = 5
	return b
}

func aggressive() params.Bundle {
	b := params.Default()
	b.UserGrowth.MonthlyGrowthRate = 0.15
	b.UserGrowth.MonthlyChurnRate = 0.01
	b.UserGrowth.EngagementRate = 0.80
	b.Partnership.Tier = params.TierEnterprise
	b.Partnership.PartnerCount = 25
	return b
}

var presets = map[string]func() params.Bundle{
	"baseline":     params.Default,
	"conservative": conservative,
	"aggressive":   aggressive,
}

// Names lists the available presets, sorted.
func Names() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Preset returns a validated copy of a named preset.
func Preset(name string) (params.Bundle, error) {
	build, ok := presets[name]
	if !ok {
		return params.Bundle{}, fmt.Errorf("unknown preset %q (have: %s)", name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// LoadFile reads a scenario file (.yaml/.yml or .hjson) over the baseline
// defaults and validates the result.
func LoadFile(path string) (params.Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return params.Bundle{}, fmt.Errorf("read scenario: %w", err)
	}
	bundle := params.Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &bundle); err != nil {
			return params.Bundle{}, fmt.Errorf("parse scenario %s: %w", path, err)
		}
	case ".hjson":
		if err := hjson.Unmarshal(data, &bundle); err != nil {
			return params.Bundle{}, fmt.Errorf("parse scenario %s: %w", path, err)
		}
	default:
		return params.Bundle{}, fmt.Errorf("scenario %s: unsupported extension (want .yaml, .yml or .hjson)", path)
	}
	if err := bundle.Validate(); err != nil {
		return params.Bundle{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return bundle, nil
}
