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
	"testing"

	gterrors "github.com/gtflow/gtflow/pkg/errors"
	"github.com/gtflow/gtflow/pkg/tier"
)

func validRecipe() *Recipe {
	return New("EBF", tier.HV,
		NewIngredients(Ingredient{"iron dust", 1}, Ingredient{"oxygen", 1000}),
		NewIngredients(Ingredient{"steel ingot", 1}),
		120, 25,
	).WithExtensions(Extensions{Coils: "Kanthal", Heat: HeatPtr(1000)})
}

func TestNewNormalizesMachine(t *testing.T) {
	r := validRecipe()
	if r.Machine != "electric blast furnace" {
		t.Errorf("Machine = %q, want %q", r.Machine, "electric blast furnace")
	}
	if r.Coils() != "kanthal" {
		t.Errorf("Coils() = %q, want kanthal", r.Coils())
	}
	if r.RequiredHeat() != 1000 {
		t.Errorf("RequiredHeat() = %d, want 1000", r.RequiredHeat())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Recipe)
		wantCode gterrors.ErrorCode
	}{
		{"valid", func(*Recipe) {}, ""},
		{"zero eut allowed", func(r *Recipe) { r.EUt = 0 }, ""},
		{"no machine", func(r *Recipe) { r.Machine = "  " }, gterrors.ErrCodeInvalidRequest},
		{"zero duration", func(r *Recipe) { r.Duration = 0 }, gterrors.ErrCodeInvalidRequest},
		{"negative duration", func(r *Recipe) { r.Duration = -1 }, gterrors.ErrCodeInvalidRequest},
		{"negative eut", func(r *Recipe) { r.EUt = -4 }, gterrors.ErrCodeInvalidRequest},
		{"no requested tier", func(r *Recipe) { r.RequestedTier = tier.Unknown }, gterrors.ErrCodeInvalidTier},
		{"bad base tier", func(r *Recipe) { r.BaseTier = tier.Tier(99) }, gterrors.ErrCodeInvalidTier},
		{"negative quantity", func(r *Recipe) { r.Outputs[0].Quantity = -1 }, gterrors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecipe()
			tt.mutate(r)
			err := r.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !gterrors.IsCode(err, tt.wantCode) {
				t.Fatalf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}

	var nilRecipe *Recipe
	if err := nilRecipe.Validate(); err == nil {
		t.Error("expected error for nil recipe")
	}
}

func TestEffectiveBaseTier(t *testing.T) {
	r := validRecipe()
	got, err := r.EffectiveBaseTier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tier.HV {
		t.Errorf("derived base tier = %s, want HV (120 EU/t)", got)
	}

	r.BaseTier = tier.EV
	got, err = r.EffectiveBaseTier()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tier.EV {
		t.Errorf("explicit base tier = %s, want EV", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := validRecipe()
	orig.Extensions.Turbine = &TurbineSpec{Size: "large", Material: "steel"}
	orig.Extensions.Fusion = &FusionSpec{Mark: 2, StartMark: 1}

	c := orig.Clone()
	c.Inputs[0].Quantity = 99
	c.Outputs.Scale(4)
	*c.Extensions.Heat = 5000
	c.Extensions.Coils = "nichrome"
	c.Extensions.Turbine.Size = "huge"
	c.Extensions.Fusion.Mark = 3

	if orig.Inputs[0].Quantity != 1 {
		t.Error("clone shares inputs")
	}
	if orig.Outputs[0].Quantity != 1 {
		t.Error("clone shares outputs")
	}
	if orig.RequiredHeat() != 1000 {
		t.Error("clone shares heat pointer")
	}
	if orig.Coils() != "kanthal" {
		t.Error("clone shares extensions")
	}
	if orig.Extensions.Turbine.Size != "large" {
		t.Error("clone shares turbine spec")
	}
	if orig.Extensions.Fusion.Mark != 2 {
		t.Error("clone shares fusion spec")
	}

	var nilRecipe *Recipe
	if nilRecipe.Clone() != nil {
		t.Error("clone of nil should be nil")
	}
}

func TestExtensionAccessorsWithoutExtensions(t *testing.T) {
	r := New("macerator", tier.LV, nil, nil, 2, 10)
	if r.RequiredHeat() != 0 {
		t.Errorf("RequiredHeat() = %d, want 0", r.RequiredHeat())
	}
	if r.Coils() != "" {
		t.Errorf("Coils() = %q, want empty", r.Coils())
	}
	if r.Ext() == nil {
		t.Error("Ext() must never return nil")
	}
}

func TestDisplayName(t *testing.T) {
	r := New("lcr", tier.HV, nil, nil, 30, 10)
	if got := r.DisplayName(); got != "Large Chemical Reactor" {
		t.Errorf("DisplayName() = %q", got)
	}
}
