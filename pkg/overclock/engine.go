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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gtflow/gtflow/pkg/defaults"
	gterrors "github.com/gtflow/gtflow/pkg/errors"
	"github.com/gtflow/gtflow/pkg/recipe"
)

// Option configures the engine.
type Option func(*Engine)

// WithLogger sets the logger used for strategy diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithTables replaces the embedded lookup tables.
func WithTables(t *Tables) Option {
	return func(e *Engine) {
		e.tables = t
	}
}

// WithConcurrency bounds the number of recipes ResolveAll works on at once.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		e.concurrency = n
	}
}

// Engine resolves recipes against the overclock rules of their machine
// family. It holds no per-call state and is safe for concurrent use.
type Engine struct {
	tables      *Tables
	log         *slog.Logger
	concurrency int
}

// New creates an engine. Unless WithTables is given, the embedded tables
// are loaded (once per process).
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		log:         slog.Default(),
		concurrency: defaults.ResolveConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.tables == nil {
		t, err := LoadTables()
		if err != nil {
			return nil, err
		}
		e.tables = t
	}
	if e.concurrency < 1 {
		e.concurrency = 1
	}
	return e, nil
}

// Tables returns the lookup tables the engine uses.
func (e *Engine) Tables() *Tables {
	return e.tables
}

// Resolve overclocks r to its requested tier and writes the resulting power
// draw and duration back into r, which is also returned. The machine name is
// normalized, fusion also rewrites RequestedTier to the tier of its new power
// draw, and turbines record their rotor efficiency in Extensions. On error r
// is left untouched.
func (e *Engine) Resolve(r *recipe.Recipe) (*recipe.Recipe, error) {
	if err := r.Validate(); err != nil {
		failuresTotal.WithLabelValues(string(gterrors.CodeOf(err))).Inc()
		return nil, err
	}

	family := FamilyOf(r.Machine)
	work := r.Clone()
	work.Machine = recipe.NormalizeMachine(work.Machine)

	if err := e.apply(family, work); err != nil {
		code := gterrors.CodeOf(err)
		if code == "" {
			code = gterrors.ErrCodeInternal
		}
		failuresTotal.WithLabelValues(string(code)).Inc()
		e.log.Debug("overclock failed",
			"machine", r.Machine,
			"family", family.String(),
			"error", err)
		return nil, gterrors.WrapWithContext(code,
			fmt.Sprintf("cannot overclock %s to %s", r.Machine, r.RequestedTier),
			err,
			map[string]any{
				"machine": r.Machine,
				"family":  family.String(),
				"tier":    r.RequestedTier.String(),
			})
	}

	*r = *work
	resolutionsTotal.WithLabelValues(family.String()).Inc()
	e.log.Debug("recipe resolved",
		"machine", r.Machine,
		"family", family.String(),
		"tier", r.RequestedTier.String(),
		"eut", r.EUt,
		"duration", r.Duration)
	return r, nil
}

// apply dispatches to exactly one strategy. work is a private copy.
func (e *Engine) apply(family Family, work *recipe.Recipe) error {
	if work.Ext().NoOverclock {
		return nil
	}

	switch family {
	case FamilyPerfect:
		return perfect(work)
	case FamilyCoil:
		return e.coil(work)
	case FamilyHeat:
		return e.heat(work)
	case FamilyParallel:
		return e.parallel(work)
	case FamilyCustomParallel:
		return e.customParallel(work)
	case FamilyZhuhai:
		return zhuhai(work)
	case FamilyMultiSmelter:
		return e.multiSmelter(work)
	case FamilyTreeGrowth:
		return e.treeGrowth(work)
	case FamilyDehydrator:
		return e.dehydrator(work)
	case FamilyFusion:
		return fusion(work)
	case FamilyGasTurbine:
		return e.turbine(work, fuelGas, 1)
	case FamilySteamTurbine:
		return e.turbine(work, fuelSteam, 1)
	case FamilyXLGasTurbine:
		return e.turbine(work, fuelGas, xlTurbineScale)
	case FamilyXLSteamTurbine:
		return e.turbine(work, fuelSteam, xlTurbineScale)
	default:
		return standard(work)
	}
}

// ResolveAll resolves recipes concurrently. It stops at the first failure
// and returns it; recipes that failed or were never started are unchanged.
func (e *Engine) ResolveAll(ctx context.Context, recipes []*recipe.Recipe) error {
	start := time.Now()
	defer func() {
		batchDuration.Observe(time.Since(start).Seconds())
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, r := range recipes {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				code := gterrors.ErrCodeInternal
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					code = gterrors.ErrCodeTimeout
				}
				return gterrors.WrapWithContext(code,
					"batch resolution cancelled", ctx.Err(),
					map[string]any{"index": i})
			default:
			}
			if _, err := e.Resolve(r); err != nil {
				return fmt.Errorf("recipe %d: %w", i, err)
			}
			return nil
		})
	}

	return g.Wait()
}
