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
	"github.com/gtflow/gtflow/pkg/tier"
)

const (
	multiSmelterEUt      = 4
	multiSmelterDuration = 25.0
	multiSmelterBatch    = 8
	multiSmelterMinShift = 4

	// customParallelMinDuration is the shortest a fixed-cap GT++ machine
	// will overclock to, in seconds.
	customParallelMinDuration = 1.0
)

// parallelSet is a recipe multiplied out to its parallel count, before
// any overclock.
type parallelSet struct {
	parallels int
	eut       float64
	duration  float64
	available float64
}

// availableEUt is the power budget of a GT++ machine at tier t.
func availableEUt(t tier.Tier) float64 {
	return t.Voltage() + 1
}

// fitParallels returns how many copies of a recipe drawing eut fit into the
// budget, capped at limit. A recipe that draws nothing always gets limit.
func fitParallels(r *recipe.Recipe, eut, available float64, limit int) (int, error) {
	n := limit
	if eut > 0 {
		n = min(int(math.Floor(available/eut)), limit)
	}
	if n < 1 {
		return 0, gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("recipe at %.6g EU/t does not fit in a %s machine", eut, r.RequestedTier),
			map[string]any{"machine": r.Machine, "available": available})
	}
	return n, nil
}

func (e *Engine) parallelStats(r *recipe.Recipe) (ParallelStats, error) {
	s, ok := e.tables.Parallel[r.Machine]
	if !ok {
		return ParallelStats{}, gterrors.NewWithContext(gterrors.ErrCodeInternal,
			"missing parallel stats for machine",
			map[string]any{"machine": r.Machine})
	}
	return s, nil
}

// gtppParallels applies the GT++ speed bonus and EU discount and fits as
// many parallels as the requested tier allows.
func gtppParallels(r *recipe.Recipe, s ParallelStats) (parallelSet, error) {
	available := availableEUt(r.RequestedTier)
	limit := (r.RequestedTier.Index() + 1) * s.ParallelsPerTier
	duration := math.Max(r.Duration/(1+s.SpeedBonus), defaults.TickSeconds)

	eut := r.EUt * s.EUDiscount
	n, err := fitParallels(r, eut, available, limit)
	if err != nil {
		return parallelSet{}, err
	}
	return parallelSet{
		parallels: n,
		eut:       eut * float64(n),
		duration:  duration,
		available: available,
	}, nil
}

// overclockSet overclocks a whole parallel set while it stays within budget
// and no faster than minDuration.
func overclockSet(p parallelSet, minDuration float64) parallelSet {
	for p.eut < p.available {
		eut := p.eut * defaults.OverclockPowerFactor
		duration := p.duration / defaults.OverclockSpeedFactor
		if eut > p.available || duration < minDuration {
			break
		}
		p.eut, p.duration = eut, duration
	}
	return p
}

func (p parallelSet) apply(r *recipe.Recipe) {
	r.EUt = p.eut
	r.Duration = p.duration
	r.Inputs.Scale(float64(p.parallels))
	r.Outputs.Scale(float64(p.parallels))
}

// parallel implements GT++ multiblock overclocking.
func (e *Engine) parallel(r *recipe.Recipe) error {
	s, err := e.parallelStats(r)
	if err != nil {
		return err
	}
	p, err := gtppParallels(r, s)
	if err != nil {
		return err
	}
	e.log.Debug("parallel set",
		"machine", r.Machine,
		"parallels", p.parallels,
		"available", p.available,
		"eut", p.eut,
		"duration", p.duration)

	overclockSet(p, defaults.TickSeconds).apply(r)
	return nil
}

// customParallel implements GT++ machines with a fixed parallel cap and a
// per-tier speed factor.
func (e *Engine) customParallel(r *recipe.Recipe) error {
	c, ok := e.tables.CustomParallel[r.Machine]
	if !ok {
		return gterrors.NewWithContext(gterrors.ErrCodeInternal,
			"missing custom parallel stats for machine",
			map[string]any{"machine": r.Machine})
	}

	available := availableEUt(r.RequestedTier)
	n, err := fitParallels(r, r.EUt, available, c.MaxParallels)
	if err != nil {
		return err
	}
	p := parallelSet{
		parallels: n,
		eut:       r.EUt * float64(n),
		duration:  r.Duration * math.Pow(c.SpeedPerTier, float64(r.RequestedTier.Index()+1)),
		available: available,
	}
	overclockSet(p, customParallelMinDuration).apply(r)
	return nil
}

// zhuhai overclocks the standard way and multiplies outputs by the
// fishing parallels of the requested tier.
func zhuhai(r *recipe.Recipe) error {
	if err := standard(r); err != nil {
		return err
	}
	r.Outputs.Scale(float64((r.RequestedTier.Index() + 2) * 2))
	return nil
}

// multiSmelter replaces the recipe's power and time with the furnace's
// fixed smelting cost and scales throughput by the coil batch size.
func (e *Engine) multiSmelter(r *recipe.Recipe) error {
	_, idx, err := e.requireCoil(r)
	if err != nil {
		return err
	}
	r.EUt = multiSmelterEUt
	r.Duration = multiSmelterDuration
	r.BaseTier = tier.Unknown
	if err := standard(r); err != nil {
		return err
	}

	batch := float64(multiSmelterBatch) * math.Pow(2, float64(max(multiSmelterMinShift, idx)))
	r.Inputs.Scale(batch)
	r.Outputs.Scale(batch)
	return nil
}

// dehydrator runs the GT++ parallel step, then overclocks the parallel set
// under the heat rules.
func (e *Engine) dehydrator(r *recipe.Recipe) error {
	s, err := e.parallelStats(r)
	if err != nil {
		return err
	}
	p, err := gtppParallels(r, s)
	if err != nil {
		return err
	}

	base, err := tier.FromVoltage(p.eut)
	if err != nil {
		return err
	}
	n, err := tier.Distance(base, r.RequestedTier)
	if err != nil {
		return err
	}

	p.apply(r)
	return e.applyHeat(r, n)
}
