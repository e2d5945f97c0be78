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

package defaults

// Time units.
const (
	// TicksPerSecond is the game's fixed simulation rate.
	TicksPerSecond = 20

	// TickSeconds is the length of one tick in seconds. No recipe can run
	// faster than one tick.
	TickSeconds = 1.0 / TicksPerSecond
)

// Voltage ladder.
const (
	// BaseVoltage is the EU/t of the lowest tier (LV). Each tier above
	// multiplies it by VoltageStep.
	BaseVoltage = 32

	// VoltageStep is the voltage ratio between adjacent tiers.
	VoltageStep = 4
)

// Overclock ratios.
const (
	// OverclockPowerFactor is the EU/t multiplier of one overclock.
	OverclockPowerFactor = 4

	// OverclockSpeedFactor is the duration divisor of one standard overclock.
	OverclockSpeedFactor = 2

	// PerfectOverclockSpeedFactor is the duration divisor of one perfect overclock.
	PerfectOverclockSpeedFactor = 4
)

// Heat rules for blast-furnace-style machines.
const (
	// HeatPerBonusOverclock is the excess heat that buys one extra overclock.
	HeatPerBonusOverclock = 1800

	// HeatPerDiscount is the leftover heat band that triggers HeatPenalty.
	HeatPerDiscount = 900

	// HeatPenalty is the power multiplier applied for a partial heat band.
	HeatPenalty = 0.95
)

// Engine tuning.
const (
	// ResolveConcurrency bounds the number of recipes resolved in parallel
	// by a batch resolution.
	ResolveConcurrency = 8
)
