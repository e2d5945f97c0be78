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

import "github.com/gtflow/gtflow/pkg/recipe"

// Family identifies the overclocking rules a machine follows.
type Family int

// Family constants. FamilyStandard is the zero value and the fallback for
// machines with no special rules.
const (
	FamilyStandard Family = iota
	FamilyPerfect
	FamilyCoil
	FamilyHeat
	FamilyParallel
	FamilyCustomParallel
	FamilyZhuhai
	FamilyMultiSmelter
	FamilyTreeGrowth
	FamilyDehydrator
	FamilyFusion
	FamilyGasTurbine
	FamilySteamTurbine
	FamilyXLGasTurbine
	FamilyXLSteamTurbine
)

var familyNames = [...]string{
	FamilyStandard:       "standard",
	FamilyPerfect:        "perfect",
	FamilyCoil:           "coil",
	FamilyHeat:           "heat",
	FamilyParallel:       "parallel",
	FamilyCustomParallel: "custom-parallel",
	FamilyZhuhai:         "zhuhai",
	FamilyMultiSmelter:   "multi-smelter",
	FamilyTreeGrowth:     "tree-growth",
	FamilyDehydrator:     "dehydrator",
	FamilyFusion:         "fusion",
	FamilyGasTurbine:     "gas-turbine",
	FamilySteamTurbine:   "steam-turbine",
	FamilyXLGasTurbine:   "xl-gas-turbine",
	FamilyXLSteamTurbine: "xl-steam-turbine",
}

// String returns the family label used in logs and metrics.
func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return "unknown"
	}
	return familyNames[f]
}

// machineFamilies maps normalized machine names to their family. Machines
// not listed here are FamilyStandard.
var machineFamilies = map[string]Family{
	"large chemical reactor":   FamilyPerfect,
	"circuit assembly line":    FamilyPerfect,
	"flotation cell regulator": FamilyPerfect,
	"isamill grinding machine": FamilyPerfect,

	"chemical plant": FamilyCoil,
	"pyrolyse oven":  FamilyCoil,

	"electric blast furnace": FamilyHeat,

	"industrial centrifuge":        FamilyParallel,
	"industrial material press":    FamilyParallel,
	"industrial electrolyzer":      FamilyParallel,
	"maceration stack":             FamilyParallel,
	"wire factory":                 FamilyParallel,
	"industrial mixing machine":    FamilyParallel,
	"industrial sifter":            FamilyParallel,
	"large thermal refinery":       FamilyParallel,
	"industrial wash plant":        FamilyParallel,
	"industrial extrusion machine": FamilyParallel,
	"large processing factory":     FamilyParallel,
	"industrial arc furnace":       FamilyParallel,
	"large scale auto-assembler":   FamilyParallel,
	"cutting factory controller":   FamilyParallel,
	"boldarnator":                  FamilyParallel,
	"dangote - distillery":         FamilyParallel,
	"thermic heating device":       FamilyParallel,

	"industrial coke oven":         FamilyCustomParallel,
	"dangote - distillation tower": FamilyCustomParallel,
	"dangote":                      FamilyCustomParallel,

	"zhuhai":                FamilyZhuhai,
	"multi smelter":         FamilyMultiSmelter,
	"tree growth simulator": FamilyTreeGrowth,
	"industrial dehydrator": FamilyDehydrator,
	"fusion reactor":        FamilyFusion,

	"large gas turbine":      FamilyGasTurbine,
	"large steam turbine":    FamilySteamTurbine,
	"xl turbo gas turbine":   FamilyXLGasTurbine,
	"xl turbo steam turbine": FamilyXLSteamTurbine,
}

// FamilyOf returns the family for a machine name. The name is normalized
// first, so aliases and any casing work.
func FamilyOf(machine string) Family {
	if f, ok := machineFamilies[recipe.NormalizeMachine(machine)]; ok {
		return f
	}
	return FamilyStandard
}

// MachinesIn returns the machine names registered for f, sorted.
// FamilyStandard returns nil since it has no explicit members.
func MachinesIn(f Family) []string {
	members := make(map[string]struct{})
	for name, fam := range machineFamilies {
		if fam == f {
			members[name] = struct{}{}
		}
	}
	if len(members) == 0 {
		return nil
	}
	return sortedKeys(members)
}
