/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package jenkins watches the builds a generated project triggers: it finds
// the jenkins server, waits for a job's build to start, tails its console
// log while it runs and checks the result.
package jenkins

import (
	"context"
	"fmt"
)

// ResultSuccess is the result jenkins reports for a passing build.
const ResultSuccess = "SUCCESS"

//go:generate mockgen --build_flags=--mod=mod -destination=server_mock.go -package=$GOPACKAGE github.com/mikeb26/forgectl/internal/jenkins Server

// Server is the subset of the jenkins remote API used here.
type Server interface {
	// LastBuild returns the most recent build of job, or nil when the job
	// has not been built yet. A missing job is ErrJobNotFound.
	LastBuild(ctx context.Context, job string) (*Build, error)
	Build(ctx context.Context, job string, number int64) (*Build, error)
	Jobs(ctx context.Context) ([]Item, error)
	Views(ctx context.Context) ([]Item, error)
}

type Build struct {
	Job      string
	Number   int64
	URL      string
	Building bool
	Result   string
}

func (b Build) String() string {
	return fmt.Sprintf("job %v build %v", b.Job, b.Number)
}

func (b *Build) Succeeded() bool {
	return b != nil && !b.Building && b.Result == ResultSuccess
}

// Item is a job or a view.
type Item struct {
	Name string
	URL  string
}
