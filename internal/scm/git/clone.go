/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikeb26/forgectl/internal/scm"
	"go.uber.org/zap"
)

const DefaultRemote = "origin"

// Clone clones url into dir. Anything already at dir is removed first so
// repeated runs always start from the remote's state.
func (c *Client) Clone(ctx context.Context, url string, dir string, opts scm.CloneOptions) error {
	if strings.TrimSpace(url) == "" {
		return scm.ErrEmptyRepoURL
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("%w: clean %v: %w", ErrFailedToExecuteGit, dir, err)
	}
	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %v: %w", ErrFailedToExecuteGit, filepath.Dir(dir), err)
	}

	remote := opts.Remote
	if remote == "" {
		remote = DefaultRemote
	}
	args, secrets := credentialArgs(opts.Credentials)
	args = append(args, "clone", "--origin", remote)
	if opts.SingleBranch {
		args = append(args, "--single-branch")
	}
	args = append(args, "--", url, dir)

	c.logger().Info("cloning", zap.String("url", url), zap.String("dir", dir))
	_, _, err := c.runRedacted(ctx, secrets, args...)
	return err
}

// credentialArgs returns the global options which authenticate an http
// remote and the strings that must not be logged.
func credentialArgs(creds *scm.Credentials) ([]string, []string) {
	if creds.IsZero() {
		return nil, nil
	}
	header := creds.BasicAuth()
	secrets := []string{header, strings.TrimPrefix(header, "Basic ")}
	if creds.Password != "" {
		secrets = append(secrets, creds.Password)
	}
	return []string{"-c", "http.extraHeader=Authorization: " + header}, secrets
}
