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

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{"json lowercase", "line.json", FormatJSON},
		{"json uppercase", "LINE.JSON", FormatJSON},
		{"yaml extension", "line.yaml", FormatYAML},
		{"yml extension", "line.yml", FormatYAML},
		{"table extension", "output.table", FormatTable},
		{"txt extension", "output.txt", FormatTable},
		{"stdin", "-", FormatYAML},
		{"unknown extension defaults to yaml", "line.recipes", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.expected {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNewReader_Errors(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("")); err == nil {
		t.Error("expected error for table format")
	}
	if _, err := NewReader(Format("xml"), strings.NewReader("")); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := NewFileReader(FormatYAML, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	var nilReader *Reader
	if err := nilReader.Deserialize(&testConfig{}); err == nil {
		t.Error("expected error for nil reader")
	}
	if err := nilReader.Close(); err != nil {
		t.Errorf("Close on nil reader: %v", err)
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		want    testConfig
		wantErr bool
	}{
		{"json", FormatJSON, `{"name":"ebf","value":3}`, testConfig{"ebf", 3}, false},
		{"yaml", FormatYAML, "name: ebf\nvalue: 3\n", testConfig{"ebf", 3}, false},
		{"json unknown field", FormatJSON, `{"name":"ebf","colour":"red"}`, testConfig{}, true},
		{"yaml unknown field", FormatYAML, "name: ebf\ncoil: kanthal\n", testConfig{}, true},
		{"yaml malformed", FormatYAML, "name: [", testConfig{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			var got testConfig
			err = r.Deserialize(&got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Deserialize error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "configs.yaml")
	if err := os.WriteFile(yamlPath, []byte("- name: a\n  value: 1\n- name: b\n  value: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := FromFile[[]testConfig](yamlPath)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if len(*got) != 2 || (*got)[1].Name != "b" {
		t.Errorf("unexpected data: %+v", *got)
	}

	jsonPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(jsonPath, []byte(`{"name":"c","value":3}`), 0o600); err != nil {
		t.Fatal(err)
	}
	one, err := FromFile[testConfig](jsonPath)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if one.Value != 3 {
		t.Errorf("unexpected data: %+v", one)
	}

	if _, err := FromFile[testConfig](filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	tablePath := filepath.Join(dir, "out.table")
	if err := os.WriteFile(tablePath, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile[testConfig](tablePath); err == nil {
		t.Error("expected error for table input")
	}
}
