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
	"strings"

	gterrors "github.com/gtflow/gtflow/pkg/errors"
	"github.com/gtflow/gtflow/pkg/recipe"
)

func unknownCoil(name string, t *Tables) error {
	return gterrors.NewWithContext(gterrors.ErrCodeUnsupportedCoil,
		fmt.Sprintf("unknown coil material %q", name),
		map[string]any{"supported": t.CoilNames()})
}

// requireCoil returns the recipe's coil, failing if none is declared or
// the material is unknown.
func (e *Engine) requireCoil(r *recipe.Recipe) (Coil, int, error) {
	name := r.Coils()
	if name == "" {
		return Coil{}, 0, gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"machine requires coils (eg \"nichrome\")",
			map[string]any{"machine": r.Machine})
	}
	c, idx, ok := e.tables.Coil(name)
	if !ok {
		return Coil{}, 0, unknownCoil(name, e.tables)
	}
	return c, idx, nil
}

// coil divides duration by the coil multiplier, scales throughput by the
// pipe casings when present, then overclocks the standard way.
func (e *Engine) coil(r *recipe.Recipe) error {
	c, _, err := e.requireCoil(r)
	if err != nil {
		return err
	}
	if c.MinTier > r.RequestedTier {
		return gterrors.NewWithContext(gterrors.ErrCodeUnsupportedCoil,
			fmt.Sprintf("%s coils need at least %s", c.Name, c.MinTier),
			map[string]any{
				"coils":     c.Name,
				"minTier":   c.MinTier.String(),
				"requested": r.RequestedTier.String(),
			})
	}

	if casing := strings.ToLower(strings.TrimSpace(r.Ext().PipeCasings)); casing != "" {
		mult, ok := e.tables.PipeCasings[casing]
		if !ok {
			return gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
				fmt.Sprintf("unknown pipe casing %q", casing),
				map[string]any{"supported": sortedKeys(e.tables.PipeCasings)})
		}
		r.Inputs.Scale(mult)
		r.Outputs.Scale(mult)
	}

	r.Duration /= c.Multiplier
	return standard(r)
}
