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

package tier

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	gterrors "github.com/gtflow/gtflow/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Tier
		wantErr bool
	}{
		{"lowercase", "lv", LV, false},
		{"uppercase", "MV", MV, false},
		{"mixed case", "LuV", LuV, false},
		{"lower luv", "luv", LuV, false},
		{"padded", "  zpm ", ZPM, false},
		{"max", "max", MAX, false},
		{"empty", "", Unknown, true},
		{"ulv not on ladder", "ulv", Unknown, true},
		{"garbage", "hv2", Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeInvalidTier))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVoltage(t *testing.T) {
	want := map[Tier]float64{
		LV: 32, MV: 128, HV: 512, EV: 2048,
		IV: 8192, LuV: 32768, ZPM: 131072,
		UV: 524288, UHV: 2097152, UEV: 8388608,
		UIV: 33554432, UMV: 134217728, UXV: 536870912,
	}
	for tr, v := range want {
		assert.Equal(t, v, tr.Voltage(), "voltage of %s", tr)
	}
}

func TestFromVoltage(t *testing.T) {
	tests := []struct {
		eut     float64
		want    Tier
		wantErr gterrors.ErrorCode
	}{
		{0, LV, ""},
		{5, LV, ""},
		{32, LV, ""},
		{32.5, MV, ""},
		{33, MV, ""},
		{128, MV, ""},
		{129, HV, ""},
		{1920, EV, ""},
		{MAX.Voltage(), MAX, ""},
		{MAX.Voltage() + 1, Unknown, gterrors.ErrCodeInvalidTier},
		{-1, Unknown, gterrors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		got, err := FromVoltage(tt.eut)
		if tt.wantErr != "" {
			require.Error(t, err, "eut=%v", tt.eut)
			assert.True(t, gterrors.IsCode(err, tt.wantErr), "eut=%v: %v", tt.eut, err)
			continue
		}
		require.NoError(t, err, "eut=%v", tt.eut)
		assert.Equal(t, tt.want, got, "eut=%v", tt.eut)
	}
}

func TestDistance(t *testing.T) {
	n, err := Distance(MV, MV)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = Distance(LV, IV)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = Distance(HV, MV)
	require.Error(t, err)
	assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeInvalidTier))

	_, err = Distance(Unknown, MV)
	require.Error(t, err)
	assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeInvalidTier))
}

func TestDistanceBelowBaseAlwaysFails(t *testing.T) {
	for _, base := range All() {
		for _, req := range All() {
			_, err := Distance(base, req)
			if req < base {
				assert.True(t, gterrors.IsCode(err, gterrors.ErrCodeInvalidTier), "%s -> %s", base, req)
			} else {
				assert.NoError(t, err, "%s -> %s", base, req)
			}
		}
	}
}

func TestAdd(t *testing.T) {
	got, err := HV.Add(2)
	require.NoError(t, err)
	assert.Equal(t, IV, got)

	_, err = MAX.Add(1)
	assert.Error(t, err)

	_, err = LV.Add(-1)
	assert.Error(t, err)
}

func TestAllAndNames(t *testing.T) {
	all := All()
	require.Len(t, all, 14)
	assert.Equal(t, LV, all[0])
	assert.Equal(t, MAX, all[len(all)-1])
	assert.Equal(t, "LuV", Names()[5])
	for i, tr := range all {
		assert.Equal(t, i, tr.Index())
	}
}

func TestTextMarshalling(t *testing.T) {
	type holder struct {
		Tier Tier `json:"tier,omitempty" yaml:"tier,omitempty"`
	}

	data, err := json.Marshal(holder{Tier: LuV})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"LuV"}`, string(data))

	var h holder
	require.NoError(t, yaml.Unmarshal([]byte("tier: zpm\n"), &h))
	assert.Equal(t, ZPM, h.Tier)

	err = yaml.Unmarshal([]byte("tier: nope\n"), &h)
	assert.Error(t, err)

	data, err = json.Marshal(holder{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestInfos(t *testing.T) {
	infos := Infos()
	require.Len(t, infos, len(All()))
	assert.Equal(t, Info{Name: "LV", Index: 0, Voltage: 32}, infos[0])
	assert.Equal(t, "MAX", infos[len(infos)-1].Name)
	for i := 1; i < len(infos); i++ {
		assert.InDelta(t, infos[i-1].Voltage*4, infos[i].Voltage, 1e-6)
	}
}
