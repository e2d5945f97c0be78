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

	"github.com/gtflow/gtflow/pkg/defaults"
	gterrors "github.com/gtflow/gtflow/pkg/errors"
	"github.com/gtflow/gtflow/pkg/recipe"
)

// heatOverclocks returns the total overclock count and power multiplier
// for n tier overclocks and the given excess heat. Every full 1800K buys one
// more overclock, capped at 2n in total. A leftover band of at least 900K
// costs a single 5% power penalty.
func heatOverclocks(n, excessHeat int) (int, float64) {
	total := n
	remaining := excessHeat
	for remaining >= defaults.HeatPerBonusOverclock && total < 2*n {
		total++
		remaining -= defaults.HeatPerBonusOverclock
	}

	penalty := 1.0
	if remaining >= defaults.HeatPerDiscount {
		penalty = defaults.HeatPenalty
	}
	return total, penalty
}

// coilHeat returns the heat of the recipe's coils, 0 when none are
// installed.
func (e *Engine) coilHeat(r *recipe.Recipe) (int, error) {
	name := r.Coils()
	if name == "" {
		return 0, nil
	}
	c, _, ok := e.tables.Coil(name)
	if !ok {
		return 0, unknownCoil(name, e.tables)
	}
	return c.Heat, nil
}

// excessHeat returns coil heat minus required heat and fails when the coils
// cannot reach the recipe's temperature.
func (e *Engine) excessHeat(r *recipe.Recipe) (int, error) {
	heat, err := e.coilHeat(r)
	if err != nil {
		return 0, err
	}
	required := r.RequiredHeat()
	excess := heat - required
	if excess < 0 {
		return 0, gterrors.NewWithContext(gterrors.ErrCodeInsufficientHeat,
			fmt.Sprintf("coils reach %dK, recipe needs %dK", heat, required),
			map[string]any{
				"coils":        r.Coils(),
				"coilHeat":     heat,
				"requiredHeat": required,
			})
	}
	return excess, nil
}

// applyHeat overclocks r n tiers under the heat rules.
func (e *Engine) applyHeat(r *recipe.Recipe, n int) error {
	excess, err := e.excessHeat(r)
	if err != nil {
		return err
	}
	total, penalty := heatOverclocks(n, excess)
	e.log.Debug("heat overclock",
		"machine", r.Machine,
		"excessHeat", excess,
		"tierOverclocks", n,
		"totalOverclocks", total,
		"penalty", penalty)

	r.EUt *= math.Pow(defaults.OverclockPowerFactor, float64(total)) * penalty
	r.Duration /= math.Pow(defaults.OverclockSpeedFactor, float64(total))
	return nil
}

// heat implements blast-furnace-style overclocking.
func (e *Engine) heat(r *recipe.Recipe) error {
	n, err := overclockCount(r)
	if err != nil {
		return err
	}
	return e.applyHeat(r, n)
}
