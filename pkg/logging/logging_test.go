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

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStructuredLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "gtflow", "v0.1.0", "info")

	logger.Info("recipe resolved", "family", "heat")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["module"] != "gtflow" {
		t.Errorf("module = %v, want gtflow", entry["module"])
	}
	if entry["version"] != "v0.1.0" {
		t.Errorf("version = %v, want v0.1.0", entry["version"])
	}
	if entry["family"] != "heat" {
		t.Errorf("family = %v, want heat", entry["family"])
	}
	if _, ok := entry["source"]; ok {
		t.Errorf("source should only be attached at debug level")
	}
}

func TestStructuredLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "gtflow", "dev", "warn")

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info record should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Fatal("warn record should be written at warn level")
	}
}

func TestStructuredLoggerEnvFallback(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")

	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "gtflow", "dev", "")
	logger.Debug("visible")

	if buf.Len() == 0 {
		t.Fatal("debug record should be written when LOG_LEVEL=debug")
	}
}
