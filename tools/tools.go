//go:build tools

package tools

// Tool dependencies pinned in go.mod. oapi-codegen regenerates
// internal/api from openapi.yaml; the goose CLI applies the same
// migrations as `docreview migrate` for operators who prefer it.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
