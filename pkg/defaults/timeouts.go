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


package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// ResolveHandlerTimeout is the timeout for a single resolve request.
	ResolveHandlerTimeout = 30 * time.Second

	// ResolveBatchTimeout is the internal timeout for resolving a batch.
	// Should be less than ResolveHandlerTimeout to allow error handling.
	ResolveBatchTimeout = 25 * time.Second

	// TableCacheTTL is the cache duration for tier and coil listings.
	// The tables are embedded, so they only change between releases.
	TableCacheTTL = 10 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server limits.
const (
	// ServerPort is the default listen port.
	ServerPort = 8080

	// ServerRateLimit is the sustained request rate in requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket size.
	ServerRateLimitBurst = 200

	// ServerMaxBulkRequests caps the recipes accepted in one resolve call.
	ServerMaxBulkRequests = 100

	// ServerMaxBodyBytes caps the resolve request body.
	ServerMaxBodyBytes = 1 << 20
)
