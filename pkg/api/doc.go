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


// Package api wires the overclock engine into the HTTP server and runs it
// as the gtflowd daemon.
//
// Routes:
//
//	POST /v1/resolve   resolve a batch of recipes
//	GET  /v1/tiers     list the voltage ladder
//	GET  /v1/coils     list coil materials
//
// plus the system endpoints from pkg/server (/health, /ready, /metrics).
//
// Example:
//
//	curl -s -X POST localhost:8080/v1/resolve \
//	  -H 'Content-Type: application/json' \
//	  -d '{"recipes":[{"machine":"macerator","tier":"HV","eut":2,"duration":20}]}'
package api
