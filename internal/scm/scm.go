/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package scm defines a small, VCS-agnostic abstraction for the source
// control operations run against a generated project: clone it, commit a
// change and push that change so the project's pipeline rebuilds.
package scm

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Author identifies who a commit is attributed to.
type Author struct {
	Name  string
	Email string
}

func (a Author) String() string {
	return fmt.Sprintf("%v <%v>", a.Name, a.Email)
}

func (a Author) IsZero() bool {
	return a.Name == "" && a.Email == ""
}

// Credentials authenticate against an http(s) remote.
type Credentials struct {
	Username string
	Password string
}

func (c *Credentials) IsZero() bool {
	return c == nil || (c.Username == "" && c.Password == "")
}

// BasicAuth returns the value of an http Authorization header.
func (c *Credentials) BasicAuth() string {
	raw := c.Username + ":" + c.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}

type CloneOptions struct {
	// Remote names the cloned remote. Empty means "origin".
	Remote       string
	SingleBranch bool
	Credentials  *Credentials
}

// CommitOptions controls the behavior of Client.Commit.
type CommitOptions struct {
	Message string
	// Author, when set, is also used as the committer.
	Author Author
	// AddAll stages every change including untracked files. When set
	// IncludeUntracked is ignored.
	AddAll bool
	// IncludeUntracked lists all untracked files currently present in the repo
	// and whether each should be included in the commit.
	//
	// For every untracked file present in the repo at commit time, this map must
	// contain a key for that file:
	//   - true  => stage/include the file in the commit
	//   - false => do not stage/include the file in the commit
	//
	// If any untracked files are present and not mentioned in this map, Commit
	// will return ErrUntrackedFiles along with the list so callers can decide
	// and retry.
	IncludeUntracked map[string]bool
}

// UntrackedFiles indicates that set of untracked files that are present and
// which should be accounted for within CommitOptions.IncludeUntracked in order
// for a commit to proceed successfully
type UntrackedFiles struct {
	Filename []string
}

// Status summarizes a working tree relative to its upstream.
type Status struct {
	Branch    string
	Upstream  string
	Ahead     int
	Behind    int
	Staged    bool
	Unstaged  bool
	Untracked bool
}

func (s Status) Clean() bool {
	return !s.Staged && !s.Unstaged && !s.Untracked
}

// Client is a VCS-agnostic client for the source-control operations the
// test harness drives.
type Client interface {
	Clone(ctx context.Context, url string, dir string, opts CloneOptions) error
	Commit(ctx context.Context, dir string, opts CommitOptions) (*UntrackedFiles, error)
	Push(ctx context.Context, dir string, remote string, creds *Credentials) error
	Status(ctx context.Context, dir string) (*Status, error)
}
