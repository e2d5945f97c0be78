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
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gtflow/gtflow/pkg/defaults"
	gterrors "github.com/gtflow/gtflow/pkg/errors"
	"github.com/gtflow/gtflow/pkg/recipe"
	"github.com/gtflow/gtflow/pkg/serializer"
	"github.com/gtflow/gtflow/pkg/server"
	"github.com/gtflow/gtflow/pkg/tier"
)

// ResolveRequest is the body of POST /v1/resolve.
type ResolveRequest struct {
	Recipes []*recipe.Recipe `json:"recipes" yaml:"recipes"`
}

// ResolveResponse carries the resolved recipes in request order.
type ResolveResponse struct {
	APIVersion string           `json:"apiVersion" yaml:"apiVersion"`
	Recipes    []*recipe.Recipe `json:"recipes" yaml:"recipes"`
}

// Handler exposes an Engine over HTTP.
type Handler struct {
	engine     *Engine
	maxRecipes int
}

// NewHandler returns a handler that accepts at most maxRecipes recipes per
// request. A non-positive maxRecipes uses defaults.ServerMaxBulkRequests.
func NewHandler(e *Engine, maxRecipes int) *Handler {
	if maxRecipes <= 0 {
		maxRecipes = defaults.ServerMaxBulkRequests
	}
	return &Handler{engine: e, maxRecipes: maxRecipes}
}

// Routes returns the handler's API routes for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/resolve": h.HandleResolve,
		"/v1/tiers":   h.HandleTiers,
		"/v1/coils":   h.HandleCoils,
	}
}

// HandleResolve resolves a batch of recipes. The body is JSON, or YAML when
// the Content-Type says so. Either every recipe resolves or the response is
// an error naming the first failure.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethods(w, r, http.MethodPost) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ResolveBatchTimeout)
	defer cancel()

	req, err := parseResolveRequest(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, gterrors.ErrCodeInvalidRequest,
				"Request body too large", false, map[string]any{
					"limit": tooLarge.Limit,
				})
			return
		}
		server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
			"Invalid resolve request", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	if len(req.Recipes) > h.maxRecipes {
		server.WriteError(w, r, http.StatusBadRequest, gterrors.ErrCodeInvalidRequest,
			"Too many recipes in one request", false, map[string]any{
				"count": len(req.Recipes),
				"max":   h.maxRecipes,
			})
		return
	}

	if err := h.engine.ResolveAll(ctx, req.Recipes); err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to resolve recipes", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ResolveResponse{
		APIVersion: server.APIVersion(r.Context()),
		Recipes:    req.Recipes,
	})
}

func parseResolveRequest(r *http.Request) (*ResolveRequest, error) {
	if r.Body == nil {
		return nil, fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	reader, err := serializer.NewReader(serializer.FormatFromContentType(r.Header.Get("Content-Type")), r.Body)
	if err != nil {
		return nil, err
	}

	var req ResolveRequest
	if err := reader.Deserialize(&req); err != nil {
		return nil, err
	}
	if len(req.Recipes) == 0 {
		return nil, fmt.Errorf("at least one recipe is required")
	}
	for i, rec := range req.Recipes {
		if rec == nil {
			return nil, fmt.Errorf("recipe %d is empty", i)
		}
		rec.Machine = recipe.NormalizeMachine(rec.Machine)
	}
	return &req, nil
}

// HandleTiers lists the voltage ladder.
func (h *Handler) HandleTiers(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	setTableCacheHeader(w)
	serializer.RespondJSON(w, http.StatusOK, tier.Infos())
}

// HandleCoils lists coil materials in heat order.
func (h *Handler) HandleCoils(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	setTableCacheHeader(w)
	serializer.RespondJSON(w, http.StatusOK, h.engine.Tables().Coils)
}

func setTableCacheHeader(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.TableCacheTTL.Seconds())))
}
