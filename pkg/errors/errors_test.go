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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "coil not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "coil not found" {
		t.Errorf("expected message 'coil not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("below base")
	ctx := map[string]any{
		"base":      "hv",
		"requested": "mv",
	}

	err := WrapWithContext(ErrCodeInvalidTier, "overclock failed", cause, ctx)

	if err.Code != ErrCodeInvalidTier {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidTier, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["base"] != "hv" {
		t.Errorf("expected base to be hv")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeUnsupportedCoil, "unknown coil"),
			expected: "[UNSUPPORTED_COIL] unknown coil",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestIsCode(t *testing.T) {
	heat := New(ErrCodeInsufficientHeat, "not enough heat")

	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"nil error", nil, ErrCodeInternal, false},
		{"plain error", errors.New("boom"), ErrCodeInternal, false},
		{"direct match", heat, ErrCodeInsufficientHeat, true},
		{"direct mismatch", heat, ErrCodeInvalidTier, false},
		{"fmt wrapped", fmt.Errorf("resolving ebf: %w", heat), ErrCodeInsufficientHeat, true},
		{"structured cause", Wrap(ErrCodeInvalidRequest, "batch failed", heat), ErrCodeInsufficientHeat, true},
		{"outer code", Wrap(ErrCodeInvalidRequest, "batch failed", heat), ErrCodeInvalidRequest, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.want {
				t.Errorf("IsCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("expected empty code, got %q", got)
	}
	err := fmt.Errorf("outer: %w", New(ErrCodeUnsupportedCoil, "coil"))
	if got := CodeOf(err); got != ErrCodeUnsupportedCoil {
		t.Errorf("expected %s, got %s", ErrCodeUnsupportedCoil, got)
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeTimeout,
		ErrCodeRateLimitExceeded,
		ErrCodeMethodNotAllowed,
		ErrCodeUnavailable,
		ErrCodeInvalidTier,
		ErrCodeInsufficientHeat,
		ErrCodeUnsupportedCoil,
	}

	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
		if seen[code] {
			t.Errorf("duplicate error code: %v", code)
		}
		seen[code] = true
	}
}
