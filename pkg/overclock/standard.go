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
	"math"

	"github.com/gtflow/gtflow/pkg/defaults"
	"github.com/gtflow/gtflow/pkg/recipe"
	"github.com/gtflow/gtflow/pkg/tier"
)

// overclockCount returns the tier distance between the recipe's effective
// base tier and its requested tier.
func overclockCount(r *recipe.Recipe) (int, error) {
	base, err := r.EffectiveBaseTier()
	if err != nil {
		return 0, err
	}
	return tier.Distance(base, r.RequestedTier)
}

// scale applies n overclocks: EU/t grows by 4 per step and duration shrinks
// by speedFactor per step.
func scale(r *recipe.Recipe, n int, speedFactor float64) {
	r.EUt *= math.Pow(defaults.OverclockPowerFactor, float64(n))
	r.Duration /= math.Pow(speedFactor, float64(n))
}

// standard overclocks with the usual 4x power, 2x speed ratio.
func standard(r *recipe.Recipe) error {
	n, err := overclockCount(r)
	if err != nil {
		return err
	}
	scale(r, n, defaults.OverclockSpeedFactor)
	return nil
}

// perfect overclocks with power and speed scaling by the same factor.
func perfect(r *recipe.Recipe) error {
	n, err := overclockCount(r)
	if err != nil {
		return err
	}
	scale(r, n, defaults.PerfectOverclockSpeedFactor)
	return nil
}
