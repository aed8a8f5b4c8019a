/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package forge is a client for the fabric8 forge command service: a REST
// API that exposes multi-page "wizard" commands which are validated, advanced
// one page at a time and finally executed.
package forge

import (
	"context"
	"net/url"
)

// APIPath is where the command service mounts its resources below the
// service root.
const APIPath = "/api/forge"

//go:generate mockgen --build_flags=--mod=mod -destination=api_mock.go -package=$GOPACKAGE github.com/mikeb26/forgectl/internal/forge API
type API interface {
	// GET /version
	Version(ctx context.Context) (*VersionDTO, error)
	// GET /commandNames
	CommandNames(ctx context.Context) ([]string, error)
	// GET /commands/{name}
	CommandInput(ctx context.Context, name string) (*CommandInputDTO, error)
	// POST /commands/{name}/validate
	Validate(ctx context.Context, name string, req *ExecutionRequest) (*ValidationResult, error)
	// POST /commands/{name}/next
	NextStep(ctx context.Context, name string, req *ExecutionRequest) (*NextStepResult, error)
	// POST /commands/{name}/execute (application/json)
	Execute(ctx context.Context, name string, req *ExecutionRequest) (*ExecutionResult, error)
	// POST /commands/{name}/execute (application/x-www-form-urlencoded)
	ExecuteForm(ctx context.Context, name string, form url.Values) (*ExecutionResult, error)
}
