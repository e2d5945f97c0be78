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
	"github.com/gtflow/gtflow/pkg/tier"
)

const (
	treeGrowthBaseDuration = 5.0
	treeGrowthDefaultLog   = "wood"

	// fusionBonusMark is the reactor mark that doubles its overclock gain.
	fusionBonusMark = 4
)

// treeGrowth computes the output of a tree growth simulator from the
// requested tier and saw type. The declared power and time are replaced.
func (e *Engine) treeGrowth(r *recipe.Recipe) error {
	saw := strings.ToLower(strings.TrimSpace(r.Ext().SawType))
	if saw == "" {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"tree growth simulator requires a saw type (eg \"buzzsaw\")",
			map[string]any{"supported": sortedKeys(e.tables.SawTypes)})
	}
	mult, ok := e.tables.SawTypes[saw]
	if !ok {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown saw type %q", saw),
			map[string]any{"supported": sortedKeys(e.tables.SawTypes)})
	}
	if r.Outputs.Len() > 1 {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"tree growth simulator supports a single output",
			map[string]any{"outputs": r.Outputs.Names()})
	}

	idx := r.RequestedTier.Index()
	t := float64(idx + 1)
	logs := (2*t*t - 2*t + 5) * 5 * mult

	name := treeGrowthDefaultLog
	if r.Outputs.Len() == 1 {
		name = r.Outputs[0].Name
	}
	r.Outputs = recipe.NewIngredients(recipe.Ingredient{Name: name, Quantity: logs})
	r.EUt = r.RequestedTier.Voltage()
	r.Duration = math.Max(treeGrowthBaseDuration/math.Pow(2, float64(idx)), defaults.TickSeconds)
	return nil
}

// fusion overclocks by reactor mark instead of tier. The requested tier is
// rewritten to the tier the overclocked power draw needs.
func fusion(r *recipe.Recipe) error {
	spec := r.Ext().Fusion
	if spec == nil {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"fusion reactor requires mark and start mark (eg mark 3, start 2)",
			map[string]any{"machine": r.Machine})
	}
	if spec.Mark < 1 || spec.StartMark < 1 {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"fusion marks start at 1",
			map[string]any{"mark": spec.Mark, "start": spec.StartMark})
	}
	oc := spec.Mark - spec.StartMark
	if oc < 0 {
		return gterrors.NewWithContext(gterrors.ErrCodeInvalidTier,
			fmt.Sprintf("recipe needs at least MK%d, got MK%d", spec.StartMark, spec.Mark),
			map[string]any{"mark": spec.Mark, "start": spec.StartMark})
	}

	factor := math.Pow(2, float64(oc))
	if spec.Mark == fusionBonusMark && oc > 0 {
		factor *= 2
	}
	r.EUt *= factor
	r.Duration /= factor

	t, err := tier.FromVoltage(r.EUt)
	if err != nil {
		return err
	}
	r.RequestedTier = t
	return nil
}
