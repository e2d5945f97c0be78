// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package overclock

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	gterrors "github.com/gtflow/gtflow/pkg/errors"
	"github.com/gtflow/gtflow/pkg/tier"
)

//go:embed data/overclock.yaml
var tablesFS embed.FS

const tablesPath = "data/overclock.yaml"

var (
	tablesOnce   sync.Once
	cachedTables *Tables
	cachedErr    error
)

// Coil is one coil material.
type Coil struct {
	Name       string    `json:"name" yaml:"name"`
	Heat       int       `json:"heat" yaml:"heat"`
	Multiplier float64   `json:"multiplier" yaml:"multiplier"`
	MinTier    tier.Tier `json:"minTier" yaml:"minTier"`
}

// ParallelStats are the per-machine bonuses of a GT++ multiblock.
type ParallelStats struct {
	SpeedBonus       float64 `yaml:"speedBonus"`
	EUDiscount       float64 `yaml:"euDiscount"`
	ParallelsPerTier int     `yaml:"parallelsPerTier"`
}

// CustomParallel describes a GT++ multiblock with a fixed parallel cap.
type CustomParallel struct {
	MaxParallels int     `yaml:"maxParallels"`
	SpeedPerTier float64 `yaml:"speedPerTier"`
}

// RotorSize is a turbine rotor size class.
type RotorSize struct {
	Multiplier float64 `yaml:"multiplier"`
	Efficiency int     `yaml:"efficiency"`
}

// TurbineMaterial is a turbine rotor material.
type TurbineMaterial struct {
	MiningSpeed float64 `yaml:"miningSpeed"`
	Tier        int     `yaml:"tier"`
}

// TurbineTables groups the data turbines need.
type TurbineTables struct {
	RotorSizes map[string]RotorSize          `yaml:"rotorSizes"`
	Materials  map[string]TurbineMaterial    `yaml:"materials"`
	Fuels      map[string]map[string]float64 `yaml:"fuels"`
}

// Tables holds every lookup table the strategies consult. A Tables value is
// read-only after ParseTables returns and safe for concurrent use.
type Tables struct {
	Coils          []Coil                    `yaml:"coils"`
	PipeCasings    map[string]float64        `yaml:"pipeCasings"`
	Parallel       map[string]ParallelStats  `yaml:"parallel"`
	CustomParallel map[string]CustomParallel `yaml:"customParallel"`
	SawTypes       map[string]float64        `yaml:"sawTypes"`
	Turbines       TurbineTables             `yaml:"turbines"`

	coilIndex map[string]int
}

// LoadTables returns the embedded tables, parsing them on first use.
func LoadTables() (*Tables, error) {
	firstLoad := false
	tablesOnce.Do(func() {
		firstLoad = true
		tableCacheMisses.Inc()

		content, err := tablesFS.ReadFile(tablesPath)
		if err != nil {
			cachedErr = gterrors.Wrap(gterrors.ErrCodeInternal, "failed to read embedded tables", err)
			return
		}
		cachedTables, cachedErr = ParseTables(content)
	})

	if cachedErr != nil {
		return nil, cachedErr
	}
	if cachedTables == nil {
		return nil, gterrors.New(gterrors.ErrCodeInternal, "overclock tables not initialized")
	}
	if !firstLoad {
		tableCacheHits.Inc()
	}
	return cachedTables, nil
}

// ParseTables parses and validates tables from YAML.
func ParseTables(content []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(content, &t); err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeInternal, "failed to parse overclock tables", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}

	t.coilIndex = make(map[string]int, len(t.Coils))
	for i := range t.Coils {
		t.Coils[i].Name = strings.ToLower(strings.TrimSpace(t.Coils[i].Name))
		t.coilIndex[t.Coils[i].Name] = i
	}
	return &t, nil
}

func (t *Tables) validate() error {
	if len(t.Coils) == 0 {
		return gterrors.New(gterrors.ErrCodeInternal, "overclock tables define no coils")
	}
	seen := make(map[string]bool, len(t.Coils))
	for i, c := range t.Coils {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			return gterrors.New(gterrors.ErrCodeInternal, fmt.Sprintf("coil %d has no name", i))
		}
		if seen[name] {
			return gterrors.New(gterrors.ErrCodeInternal, fmt.Sprintf("duplicate coil %q", name))
		}
		seen[name] = true
		if c.Multiplier <= 0 {
			return gterrors.New(gterrors.ErrCodeInternal, fmt.Sprintf("coil %q has non-positive multiplier", name))
		}
		if !c.MinTier.IsValid() {
			return gterrors.New(gterrors.ErrCodeInternal, fmt.Sprintf("coil %q has no minimum tier", name))
		}
		// Heat must rise with coil tier.
		if i > 0 && c.Heat <= t.Coils[i-1].Heat {
			return gterrors.New(gterrors.ErrCodeInternal, fmt.Sprintf("coil %q heat is not above the previous coil", name))
		}
	}
	for name, s := range t.Parallel {
		if s.ParallelsPerTier <= 0 || s.EUDiscount <= 0 || s.SpeedBonus < 0 {
			return gterrors.New(gterrors.ErrCodeInternal, fmt.Sprintf("invalid parallel stats for %q", name))
		}
	}
	for name, c := range t.CustomParallel {
		if c.MaxParallels <= 0 || c.SpeedPerTier <= 0 {
			return gterrors.New(gterrors.ErrCodeInternal, fmt.Sprintf("invalid custom parallel stats for %q", name))
		}
	}
	return nil
}

// Coil returns a coil by name along with its position in the coil order.
func (t *Tables) Coil(name string) (Coil, int, bool) {
	i, ok := t.coilIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Coil{}, 0, false
	}
	return t.Coils[i], i, true
}

// CoilNames returns the coil names in tier order.
func (t *Tables) CoilNames() []string {
	out := make([]string, len(t.Coils))
	for i, c := range t.Coils {
		out[i] = c.Name
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
