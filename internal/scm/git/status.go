/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/mikeb26/forgectl/internal/scm"
)

// Status reports the branch, upstream divergence and pending changes of the
// repo at dir.
func (c *Client) Status(ctx context.Context, dir string) (*scm.Status, error) {
	inside, _, err := c.runWithTimeout(ctx, buildGitArgs(dir, "rev-parse", "--is-inside-work-tree")...)
	if err != nil || strings.TrimSpace(inside) != "true" {
		return nil, fmt.Errorf("%w: %v", ErrNotGitRepo, dir)
	}
	out, _, err := c.runWithTimeout(ctx, buildGitArgs(dir, "status", "--porcelain=v2", "--branch")...)
	if err != nil {
		return nil, err
	}
	st := parsePorcelainV2(out)
	return &st, nil
}
