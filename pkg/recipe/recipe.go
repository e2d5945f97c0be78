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

package recipe

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	gterrors "github.com/gtflow/gtflow/pkg/errors"
	"github.com/gtflow/gtflow/pkg/tier"
)

// Recipe is one crafting operation plus the caller's requested tier.
// The engine overwrites EUt and Duration; every other field is input.
type Recipe struct {
	Machine       string               `json:"machine" yaml:"machine"`
	BaseTier      tier.Tier            `json:"baseTier,omitempty" yaml:"baseTier,omitempty"`
	RequestedTier tier.Tier            `json:"tier" yaml:"tier"`
	Inputs        IngredientCollection `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs       IngredientCollection `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	EUt           float64              `json:"eut" yaml:"eut"`
	Duration      float64              `json:"duration" yaml:"duration"`
	Extensions    *Extensions          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// Extensions holds machine-specific attributes. Each machine family reads
// only the fields it needs and fails if a required one is missing.
type Extensions struct {
	// Heat is the recipe's required heat in kelvin (blast furnaces).
	Heat *int `json:"heat,omitempty" yaml:"heat,omitempty"`

	// Coils is the coil material installed in the machine.
	Coils string `json:"coils,omitempty" yaml:"coils,omitempty"`

	// PipeCasings is the chemical plant pipe casing material.
	PipeCasings string `json:"pipeCasings,omitempty" yaml:"pipeCasings,omitempty"`

	// SawType is the tree growth simulator tool (saw, buzzsaw, chainsaw).
	SawType string `json:"sawType,omitempty" yaml:"sawType,omitempty"`

	Turbine *TurbineSpec `json:"turbine,omitempty" yaml:"turbine,omitempty"`
	Fusion  *FusionSpec  `json:"fusion,omitempty" yaml:"fusion,omitempty"`

	// NoOverclock leaves the recipe exactly as declared.
	NoOverclock bool `json:"noOverclock,omitempty" yaml:"noOverclock,omitempty"`

	// Efficiency is the turbine efficiency in percent. Set on resolve.
	Efficiency int `json:"efficiency,omitempty" yaml:"efficiency,omitempty"`
}

// TurbineSpec describes the rotor installed in a turbine.
type TurbineSpec struct {
	Size     string `json:"size" yaml:"size"`
	Material string `json:"material" yaml:"material"`
}

// FusionSpec gives the fusion reactor mark the recipe runs on and the
// lowest mark that can run it.
type FusionSpec struct {
	Mark      int `json:"mark" yaml:"mark"`
	StartMark int `json:"start" yaml:"start"`
}

// New creates a recipe with a normalized machine name.
func New(machine string, requested tier.Tier, inputs, outputs IngredientCollection, eut, duration float64) *Recipe {
	return &Recipe{
		Machine:       NormalizeMachine(machine),
		RequestedTier: requested,
		Inputs:        inputs,
		Outputs:       outputs,
		EUt:           eut,
		Duration:      duration,
	}
}

// WithExtensions attaches ext and returns r for chaining.
func (r *Recipe) WithExtensions(ext Extensions) *Recipe {
	r.Extensions = &ext
	return r
}

// HeatPtr is a helper for setting Extensions.Heat in literals.
func HeatPtr(kelvin int) *int {
	return &kelvin
}

// Validate checks the invariants every machine family relies on.
func (r *Recipe) Validate() error {
	if r == nil {
		return gterrors.New(gterrors.ErrCodeInvalidRequest, "recipe is nil")
	}
	if strings.TrimSpace(r.Machine) == "" {
		return gterrors.New(gterrors.ErrCodeInvalidRequest, "recipe has no machine")
	}
	if !(r.Duration > 0) || math.IsInf(r.Duration, 0) {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"duration must be positive",
			map[string]any{"machine": r.Machine, "duration": r.Duration})
	}
	if !(r.EUt >= 0) || math.IsInf(r.EUt, 0) {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"power draw must be non-negative",
			map[string]any{"machine": r.Machine, "eut": r.EUt})
	}
	if !r.RequestedTier.IsValid() {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidTier,
			"requested tier is not set",
			map[string]any{"machine": r.Machine})
	}
	if r.BaseTier != tier.Unknown && !r.BaseTier.IsValid() {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidTier,
			"base tier is out of range",
			map[string]any{"machine": r.Machine, "baseTier": int(r.BaseTier)})
	}
	for _, side := range []IngredientCollection{r.Inputs, r.Outputs} {
		for _, ing := range side {
			if ing.Quantity < 0 {
				return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
					"ingredient quantity must be non-negative",
					map[string]any{"machine": r.Machine, "ingredient": ing.Name})
			}
		}
	}
	return nil
}

// EffectiveBaseTier returns BaseTier when set, otherwise the lowest tier
// whose voltage covers EUt.
func (r *Recipe) EffectiveBaseTier() (tier.Tier, error) {
	if r.BaseTier != tier.Unknown {
		return r.BaseTier, nil
	}
	return tier.FromVoltage(r.EUt)
}

// RequiredHeat returns the required heat, 0 when not declared.
func (r *Recipe) RequiredHeat() int {
	if r.Extensions == nil || r.Extensions.Heat == nil {
		return 0
	}
	return *r.Extensions.Heat
}

// Coils returns the normalized coil material, "" when not declared.
func (r *Recipe) Coils() string {
	if r.Extensions == nil {
		return ""
	}
	return normalizeKey(r.Extensions.Coils)
}

// Ext returns the extensions, never nil.
func (r *Recipe) Ext() *Extensions {
	if r.Extensions == nil {
		return &Extensions{}
	}
	return r.Extensions
}

// Clone returns a deep copy.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	out := *r
	out.Inputs = r.Inputs.Clone()
	out.Outputs = r.Outputs.Clone()
	if r.Extensions != nil {
		ext := *r.Extensions
		if ext.Heat != nil {
			ext.Heat = HeatPtr(*ext.Heat)
		}
		if ext.Turbine != nil {
			t := *ext.Turbine
			ext.Turbine = &t
		}
		if ext.Fusion != nil {
			f := *ext.Fusion
			ext.Fusion = &f
		}
		out.Extensions = &ext
	}
	return &out
}

// DisplayName returns the machine name in title case for tables and labels.
func (r *Recipe) DisplayName() string {
	return cases.Title(language.English).String(r.Machine)
}

// String implements fmt.Stringer.
func (r *Recipe) String() string {
	return fmt.Sprintf("%s [%s] %.6g EU/t %.6gs in=%v out=%v",
		r.Machine, r.RequestedTier, r.EUt, r.Duration, r.Inputs.Names(), r.Outputs.Names())
}

func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
