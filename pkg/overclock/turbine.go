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
	"fmt"
	"math"
	"strings"

	"github.com/gtflow/gtflow/pkg/defaults"
	gterrors "github.com/gtflow/gtflow/pkg/errors"
	"github.com/gtflow/gtflow/pkg/recipe"
)

const (
	fuelGas   = "gas"
	fuelSteam = "steam"

	xlTurbineScale = 16

	// turbineEUPerFlow converts rotor speed into optimal EU/t.
	turbineEUPerFlow = 50

	// steamPerWater is the steam in litres condensed into one litre of
	// distilled water.
	steamPerWater = 160

	turbineOutputEU    = "EU"
	turbineOutputWater = "(recycle) distilled water"
)

// turbine computes the optimal fuel flow and power output of a turbine.
// The first input is the fuel. XL turbines multiply throughput by scale.
func (e *Engine) turbine(r *recipe.Recipe, fuelType string, scale float64) error {
	spec := r.Ext().Turbine
	if spec == nil {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"turbine requires rotor size and material (eg large, infinity)",
			map[string]any{"machine": r.Machine})
	}
	if r.Inputs.Len() == 0 {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"turbine requires a fuel input",
			map[string]any{"machine": r.Machine})
	}

	tt := e.tables.Turbines
	fuel := strings.ToLower(strings.TrimSpace(r.Inputs[0].Name))
	burn, ok := tt.Fuels[fuelType][fuel]
	if !ok || burn <= 0 {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported %s turbine fuel %q", fuelType, fuel),
			map[string]any{"supported": sortedKeys(tt.Fuels[fuelType])})
	}
	material, ok := tt.Materials[strings.ToLower(strings.TrimSpace(spec.Material))]
	if !ok {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported rotor material %q", spec.Material),
			map[string]any{"supported": sortedKeys(tt.Materials)})
	}
	size, ok := tt.RotorSizes[strings.ToLower(strings.TrimSpace(spec.Size))]
	if !ok {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported rotor size %q", spec.Size),
			map[string]any{"supported": sortedKeys(tt.RotorSizes)})
	}

	optimal := material.MiningSpeed * size.Multiplier * turbineEUPerFlow
	efficiency := material.Tier*10 + 100 + size.Efficiency
	flow := math.Floor(optimal / burn)
	output := math.Floor(flow * burn * float64(efficiency) / 100)

	e.log.Debug("turbine output",
		"machine", r.Machine,
		"fuel", fuel,
		"optimalEUt", optimal,
		"efficiency", fmt.Sprintf("%d%%", efficiency),
		"flow", flow,
		"output", output)

	outputs := recipe.NewIngredients(recipe.Ingredient{Name: turbineOutputEU, Quantity: output})
	if fuelType == fuelSteam {
		outputs = append(outputs, recipe.Ingredient{
			Name:     turbineOutputWater,
			Quantity: math.Floor(flow / steamPerWater),
		})
	}

	r.Extensions.Efficiency = efficiency
	r.EUt = 0
	r.Duration = defaults.TickSeconds
	r.Inputs[0].Quantity = flow
	r.Outputs = outputs
	r.Inputs.Scale(scale)
	r.Outputs.Scale(scale)
	return nil
}
