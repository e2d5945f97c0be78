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

// Package tier implements the voltage tier ladder.
//
// Tiers are ordered LV < MV < HV < ... < MAX. Each tier's voltage is
// 32 * 4^index EU/t; the number of steps between two tiers is the number of
// overclocks a machine can apply when run above its base tier.
//
// The zero Tier is Unknown and means "not set"; Parse never returns it
// without an error.
package tier

import (
	"fmt"
	"math"
	"strings"

	"github.com/gtflow/gtflow/pkg/defaults"
	gterrors "github.com/gtflow/gtflow/pkg/errors"
)

// Tier is a position on the voltage ladder.
type Tier int

// Tier constants in ladder order.
const (
	Unknown Tier = iota
	LV
	MV
	HV
	EV
	IV
	LuV
	ZPM
	UV
	UHV
	UEV
	UIV
	UMV
	UXV
	MAX
)

var names = [...]string{
	Unknown: "",
	LV:      "LV",
	MV:      "MV",
	HV:      "HV",
	EV:      "EV",
	IV:      "IV",
	LuV:     "LuV",
	ZPM:     "ZPM",
	UV:      "UV",
	UHV:     "UHV",
	UEV:     "UEV",
	UIV:     "UIV",
	UMV:     "UMV",
	UXV:     "UXV",
	MAX:     "MAX",
}

// byName is built once from names; keys are lowercase.
var byName = func() map[string]Tier {
	m := make(map[string]Tier, len(names))
	for t := LV; t <= MAX; t++ {
		m[strings.ToLower(names[t])] = t
	}
	return m
}()

// All returns every tier from LV to MAX in ladder order.
func All() []Tier {
	out := make([]Tier, 0, int(MAX))
	for t := LV; t <= MAX; t++ {
		out = append(out, t)
	}
	return out
}

// Parse parses a tier name, ignoring case and surrounding whitespace.
func Parse(s string) (Tier, error) {
	t, ok := byName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Unknown, gterrors.NewWithContext(gterrors.ErrCodeInvalidTier,
			fmt.Sprintf("unknown tier %q", s),
			map[string]any{"supported": Names()})
	}
	return t, nil
}

// Names returns the canonical names of all tiers in ladder order.
func Names() []string {
	out := make([]string, 0, int(MAX))
	for t := LV; t <= MAX; t++ {
		out = append(out, names[t])
	}
	return out
}

// IsValid reports whether t is a tier on the ladder.
func (t Tier) IsValid() bool {
	return t >= LV && t <= MAX
}

// String returns the canonical tier name.
func (t Tier) String() string {
	if t < Unknown || int(t) >= len(names) {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return names[t]
}

// Index returns the zero-based ladder position (LV = 0).
func (t Tier) Index() int {
	return int(t) - 1
}

// Voltage returns the tier's maximum EU/t.
func (t Tier) Voltage() float64 {
	return defaults.BaseVoltage * math.Pow(defaults.VoltageStep, float64(t.Index()))
}

// Add returns the tier n steps above t, or an error if that leaves the ladder.
func (t Tier) Add(n int) (Tier, error) {
	out := t + Tier(n)
	if !out.IsValid() {
		return Unknown, gterrors.NewWithContext(gterrors.ErrCodeInvalidTier,
			"tier out of range",
			map[string]any{"tier": t.String(), "steps": n})
	}
	return out, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text decodes to Unknown.
func (t *Tier) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*t = Unknown
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// FromVoltage returns the lowest tier whose voltage covers eut.
func FromVoltage(eut float64) (Tier, error) {
	if eut < 0 || math.IsNaN(eut) {
		return Unknown, gterrors.NewWithContext(gterrors.ErrCodeInvalidRequest,
			"power draw must be non-negative",
			map[string]any{"eut": eut})
	}
	for t := LV; t <= MAX; t++ {
		if eut <= t.Voltage() {
			return t, nil
		}
	}
	return Unknown, gterrors.NewWithContext(gterrors.ErrCodeInvalidTier,
		"power draw exceeds the highest tier",
		map[string]any{"eut": eut, "max": MAX.Voltage()})
}

// Distance returns the number of tier steps from base up to requested.
// It fails with ErrCodeInvalidTier if requested is below base; tiers are
// never clamped.
func Distance(base, requested Tier) (int, error) {
	if !base.IsValid() || !requested.IsValid() {
		return 0, gterrors.NewWithContext(gterrors.ErrCodeInvalidTier,
			"tier is not set",
			map[string]any{"base": base.String(), "requested": requested.String()})
	}
	if requested < base {
		return 0, gterrors.NewWithContext(gterrors.ErrCodeInvalidTier,
			fmt.Sprintf("requested tier %s is below base tier %s", requested, base),
			map[string]any{"base": base.String(), "requested": requested.String()})
	}
	return int(requested - base), nil
}

// Info describes one tier for listings.
type Info struct {
	Name    string  `json:"name" yaml:"name"`
	Index   int     `json:"index" yaml:"index"`
	Voltage float64 `json:"voltage" yaml:"voltage"`
}

// Infos returns the ladder from LV to MAX.
func Infos() []Info {
	all := All()
	out := make([]Info, 0, len(all))
	for _, t := range all {
		out = append(out, Info{Name: t.String(), Index: t.Index(), Voltage: t.Voltage()})
	}
	return out
}
