// Copyright (c) 2026 Alexander Karpov.
// Licensed under the MIT license; see LICENSE.

// Package openapi serves the embedded OpenAPI 3 description of the API.
package openapi

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var document []byte

// Handler serves the OpenAPI document at /api/v1/openapi.json.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}
