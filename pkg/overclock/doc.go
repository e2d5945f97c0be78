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

// Package overclock resolves recipes to the power draw and duration they
// have when run at a higher tier than their base tier.
//
// Each machine belongs to exactly one Family, computed from its normalized
// name. The engine dispatches on the family and applies that family's rules:
//
//	standard          EU/t x4, duration /2 per tier step
//	perfect           EU/t x4, duration /4 per tier step
//	coil              duration / coil multiplier, then standard
//	heat              standard plus one bonus overclock per 1800K of excess
//	                  heat (at most doubling the count); a leftover band of
//	                  900K or more costs 5% power
//	parallel          GT++ speed bonus, EU discount and parallels, then
//	                  overclock the parallel set while it fits
//	custom-parallel   GT++ with a fixed parallel cap and per-tier speed
//	zhuhai            standard, outputs scale with tier
//	multi-smelter     fixed 4 EU/t, batch size from coil
//	tree-growth       output from tier and saw type
//	dehydrator        GT++ parallels, then heat rules
//	fusion            overclock by reactor mark
//	*-turbine         optimal fuel flow and EU output from rotor
//
// Unknown machines use the standard rules.
//
// # Usage
//
//	engine, err := overclock.New(overclock.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	r := recipe.New("ebf", tier.HV, in, out, 120, 50).
//	    WithExtensions(recipe.Extensions{Coils: "kanthal", Heat: recipe.HeatPtr(1000)})
//	if _, err := engine.Resolve(r); err != nil {
//	    return err
//	}
//
// Resolve overwrites the recipe's EUt and Duration (and, for some families,
// its ingredient quantities). It is all or nothing: on error the recipe is
// unchanged. ResolveAll resolves a batch concurrently.
//
// # Lookup Tables
//
// Coil, pipe casing, GT++ and turbine data is embedded from
// data/overclock.yaml and parsed once per process. WithTables substitutes
// custom tables, which is mostly useful in tests.
//
// # Errors
//
// Failures carry a pkg/errors code:
//
//	INVALID_TIER       requested tier below base tier, or tier unset
//	INSUFFICIENT_HEAT  coils cannot reach the recipe's required heat
//	UNSUPPORTED_COIL   unknown coil, or coil needs a higher tier
//	INVALID_REQUEST    missing or unknown machine-specific attributes
//
// # HTTP
//
// Handler serves the engine over HTTP: POST /v1/resolve takes
// {"recipes": [...]} as JSON or YAML and answers with the resolved list,
// GET /v1/tiers and GET /v1/coils list the lookup data. Register
// Handler.Routes with pkg/server.
//
// # Metrics
//
// Resolutions, failures by code, batch latency and table cache hits are
// exported through the default Prometheus registry.
package overclock
