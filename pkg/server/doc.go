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


// Package server provides the HTTP front end for the gtflow resolution
// engine.
//
// The server is a stateless JSON API. It owns the production concerns and
// leaves routes to the caller:
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking (github.com/google/uuid)
//   - Panic recovery
//   - Request body limits
//   - Prometheus metrics on /metrics
//   - Health and readiness probes
//   - Graceful shutdown on SIGINT and SIGTERM
//
// # Usage
//
//	s := server.New(
//	    server.WithName("gtflowd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/resolve": h.HandleResolve,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// Defaults come from pkg/defaults and may be overridden by the environment:
//
//	PORT                       listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS   graceful shutdown window (default 30)
//	GTFLOW_RATE_LIMIT          sustained requests per second (default 100)
//
// # System Endpoints
//
// GET /health always returns 200 with {"status": "healthy"}.
//
// GET /ready returns 200 while serving and 503 before start and during
// shutdown.
//
// GET /metrics exposes the Prometheus registry, including the engine's
// gtflow_overclock_resolutions_total and the server's gtflow_http_* series.
//
// # Observability
//
// Every API request carries an X-Request-Id. A client supplied UUID is kept;
// anything else is replaced. The ID is echoed in the response header and in
// every error body.
//
// Rate limit state is reported in X-RateLimit-Limit, X-RateLimit-Remaining
// and X-RateLimit-Reset. A rejected request gets 429 with Retry-After.
//
// Clients may request an API version with
// Accept: application/vnd.gtflow.v1+json; the negotiated version is returned
// in X-API-Version.
//
// # Error Handling
//
// All errors share one JSON shape:
//
//	{
//	  "code": "INSUFFICIENT_HEAT",
//	  "message": "cannot overclock electric blast furnace to HV",
//	  "details": {"machine": "electric blast furnace", "family": "heat", "tier": "HV", "error": "..."},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "retryable": false
//	}
//
// Status codes follow the error code: INVALID_REQUEST and INVALID_TIER map
// to 400, INSUFFICIENT_HEAT and UNSUPPORTED_COIL to 422, NOT_FOUND to 404,
// RATE_LIMIT_EXCEEDED to 429, TIMEOUT to 504 and everything else to 500.
package server
