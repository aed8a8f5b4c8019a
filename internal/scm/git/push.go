/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package git

import (
	"context"

	"github.com/mikeb26/forgectl/internal/scm"
	"go.uber.org/zap"
)

// Push pushes the current branch of the repo at dir to remote.
func (c *Client) Push(ctx context.Context, dir string, remote string, creds *scm.Credentials) error {
	if remote == "" {
		remote = DefaultRemote
	}
	args, secrets := credentialArgs(creds)
	args = append(args, buildGitArgs(dir, "push", remote, "HEAD")...)

	c.logger().Info("pushing", zap.String("dir", dir), zap.String("remote", remote))
	_, _, err := c.runRedacted(ctx, secrets, args...)
	return err
}
