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

// Package defaults provides centralized constants for the gtflow engine.
//
// This package defines the game's fixed numeric rules (tick rate, voltage
// ladder base, heat bands), engine tuning values and the HTTP server's
// timeouts and limits. Centralizing them keeps the strategies in
// pkg/overclock free of magic numbers.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/gtflow/gtflow/pkg/defaults"
//
//	minDuration := defaults.TickSeconds
//
// # Heat Guidelines
//
// Heat-tier machines compare coil heat against a recipe's required heat:
//
//   - Every full HeatPerBonusOverclock of excess grants one extra overclock
//   - A leftover band of at least HeatPerDiscount costs HeatPenalty on power
//
// # Timeout Guidelines
//
// ResolveBatchTimeout stays below ResolveHandlerTimeout so a slow batch is
// reported as an error before the HTTP write deadline.
package defaults
