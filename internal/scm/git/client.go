/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package git implements scm.Client by running the git executable.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/mikeb26/forgectl/internal/scm"
	"go.uber.org/zap"
)

// Client is a small abstraction over calling the git executable.
//
// Short queries (status, ls-files) are bounded by Timeout when ctx has no
// deadline. Clone, commit and push are network or hook bound and only
// follow ctx.
type Client struct {
	// Timeout is applied to short queries when ctx has no deadline.
	Timeout time.Duration
	Logger  *zap.Logger
}

var _ scm.Client = (*Client)(nil)

func NewClient() *Client {
	return &Client{Timeout: 5 * time.Second, Logger: zap.NewNop()}
}

func (c *Client) runWithTimeout(ctx context.Context, args ...string) (string, string, error) {
	if _, ok := ctx.Deadline(); !ok && c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	return c.run(ctx, args...)
}

func (c *Client) run(ctx context.Context, args ...string) (string, string, error) {
	return c.runRedacted(ctx, nil, args...)
}

// runRedacted runs git and scrubs each of secrets from everything it logs
// or returns.
func (c *Client) runRedacted(ctx context.Context, secrets []string,
	args ...string) (string, string, error) {

	c.logger().Debug("git", zap.String("args", redact(strings.Join(args, " "), secrets)))

	cmd := exec.CommandContext(ctx, "git", args...)
	var out bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	// never block on a credential prompt
	cmd.Env = append(cmd.Environ(), "GIT_TERMINAL_PROMPT=0")

	err := cmd.Run()
	stderr := redact(errBuf.String(), secrets)
	if err != nil {
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			return out.String(), stderr, fmt.Errorf("%w: git %v: %w",
				ErrFailedToExecuteGit, subcommand(args), err)
		}
		return out.String(), stderr, fmt.Errorf("%w: git %v: %w: %v",
			ErrFailedToExecuteGit, subcommand(args), err, detail)
	}
	return out.String(), stderr, nil
}

func buildGitArgs(dir string, args ...string) []string {
	if strings.TrimSpace(dir) == "" {
		return args
	}
	// Use -C to scope git execution to the provided directory without
	// changing the process working directory.
	return append([]string{"-C", dir}, args...)
}

// subcommand returns the first argument that is not a global option.
func subcommand(args []string) string {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-C", "-c":
			i++
			continue
		}
		return args[i]
	}
	return ""
}

func redact(s string, secrets []string) string {
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		s = strings.ReplaceAll(s, secret, "xxxxx")
	}
	return s
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
