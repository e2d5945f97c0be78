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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type level int

func (l level) String() string { return [...]string{"low", "high"}[l] }

type testTable struct {
	rows [][]string
}

func (t testTable) TableHeader() []string { return []string{"MACHINE", "EU/T"} }
func (t testTable) TableRows() [][]string { return t.rows }

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{{Name: "test1", Value: 123}, {Name: "test2", Value: 456}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[0].Name != "test1" || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{{Name: "test1", Value: 123}, {Name: "test2", Value: 456}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if len(result) != 2 || result[1].Name != "test2" || result[1].Value != 456 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTableTabular(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testTable{rows: [][]string{
		{"electric blast furnace", "456"},
		{"macerator", "32"},
	}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "MACHINE") || !strings.Contains(lines[0], "EU/T") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	// Columns are aligned.
	if strings.Index(lines[1], "456") != strings.Index(lines[2], "32") {
		t.Errorf("columns not aligned:\n%s", buf.String())
	}
}

func TestWriter_SerializeTableRaggedRow(t *testing.T) {
	writer := NewWriter(FormatTable, &bytes.Buffer{})
	err := writer.Serialize(context.Background(), testTable{rows: [][]string{{"only one"}}})
	if err == nil {
		t.Fatal("expected error for ragged row")
	}
}

func TestWriter_SerializeTableFlattened(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := struct {
		Name   string
		Level  level
		Nested struct{ Count int }
		Items  []string
		Empty  *testConfig
		hidden string
	}{Name: "ebf", Level: 1, Items: []string{"a", "b"}}
	data.Nested.Count = 3
	data.hidden = "secret"

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "Name", "ebf", "Level", "high", "Nested.Count", "Items.[1]", "Empty"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "secret") {
		t.Errorf("unexported field leaked:\n%s", out)
	}
}

func TestWriter_SerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), struct{}{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)
	if err := writer.Serialize(context.Background(), testConfig{Name: "x"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestWriter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(ctx, testConfig{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	writer := NewFileWriterOrStdout(FormatYAML, path)
	if err := writer.Serialize(context.Background(), testConfig{Name: "file", Value: 7}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("second Close should be a no-op: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), "name: file") {
		t.Errorf("unexpected file content: %q", content)
	}

	for _, p := range []string{"", "-", "  "} {
		w := NewFileWriterOrStdout(FormatJSON, p)
		if w.output != os.Stdout || w.closer != nil {
			t.Errorf("path %q should write to stdout", p)
		}
	}

	bad := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "dir", "out.json"))
	if bad.output != os.Stdout {
		t.Error("unwritable path should fall back to stdout")
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 3 {
		t.Fatalf("expected 3 formats, got %v", formats)
	}
	for _, f := range formats {
		if Format(f).IsUnknown() {
			t.Errorf("supported format %q reported unknown", f)
		}
	}
}
