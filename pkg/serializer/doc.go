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

// Package serializer reads recipe files and writes resolution results.
//
// Three output formats are supported:
//   - JSON: machine-readable, indented
//   - YAML: human-readable, round-trips through the reader
//   - Table: aligned columns for values implementing Tabular, flattened
//     FIELD/VALUE pairs for anything else
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatTable, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, results); err != nil {
//	    return err
//	}
//
// Reading (format from extension, "-" reads stdin as YAML):
//
//	recipes, err := serializer.FromFile[[]*recipe.Recipe]("line.yaml")
//
// YAML input is decoded strictly: unknown keys are errors, so a misspelled
// extension field fails loudly instead of being ignored.
package serializer
