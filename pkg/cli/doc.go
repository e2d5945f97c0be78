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

// Package cli implements the gtflow command-line interface.
//
// # Commands
//
// resolve - Overclock recipes:
//
//	gtflow resolve -m ebf --tier HV --base-tier MV --eut 120 --duration 50 --coils kanthal --heat 1000
//	gtflow resolve -f line.yaml --format json -o resolved.json
//
// A single recipe is built from flags; --file loads a YAML or JSON list of
// recipes (the same shape the yaml/json output formats produce) and resolves
// them concurrently. Any failure aborts the whole run.
//
// tiers - List the voltage ladder:
//
//	gtflow tiers
//
// coils - List coil materials:
//
//	gtflow coils --format yaml
//
// # Global Flags
//
//	--log-level    debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Command flags shared by every command:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: table, json, yaml (default: table)
//
// # Environment Variables
//
//	GTFLOW_FORMAT      Default for --format
//	GTFLOW_LOG_LEVEL   Default for --log-level (LOG_LEVEL is also honored)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, resolution failure)
//	2  Interrupted
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/gtflow/gtflow/pkg/cli.version=1.0.0'"
package cli
