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

package overclock

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Resolution metrics
	resolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtflow_overclock_resolutions_total",
			Help: "Total number of successfully resolved recipes by machine family",
		},
		[]string{"family"},
	)
	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtflow_overclock_failures_total",
			Help: "Total number of failed recipe resolutions by error code",
		},
		[]string{"code"},
	)
	batchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gtflow_overclock_batch_duration_seconds",
			Help:    "Duration of batch recipe resolution in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	// Lookup table cache metrics
	tableCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gtflow_overclock_table_cache_hits_total",
			Help: "Total number of overclock table cache hits",
		},
	)
	tableCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gtflow_overclock_table_cache_misses_total",
			Help: "Total number of overclock table cache misses (initial loads)",
		},
	)
)
