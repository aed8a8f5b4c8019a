/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package git

import (
	"context"
	"strings"

	"github.com/mikeb26/forgectl/internal/scm"
	"go.uber.org/zap"
)

// Commit stages and commits changes.
//
// Behavior:
//   - With opts.AddAll, stages everything (equivalent to `git add -A`).
//   - Otherwise compiles the list of untracked files present in the repo.
//     If any untracked file is not mentioned in opts.IncludeUntracked, returns
//     scm.ErrUntrackedFiles (and includes the full list in the return).
//     Tracked changes are always staged (`git add -u`) along with the
//     untracked files whose map value is true.
//   - Returns scm.ErrNothingToCommit when nothing ends up staged.
//   - Commits with opts.Message, attributed to opts.Author when set.
func (c *Client) Commit(ctx context.Context, dir string, opts scm.CommitOptions) (*scm.UntrackedFiles, error) {
	if strings.TrimSpace(opts.Message) == "" {
		return nil, scm.ErrEmptyCommitMessage
	}

	if opts.AddAll {
		if _, _, err := c.run(ctx, buildGitArgs(dir, "add", "-A")...); err != nil {
			return nil, err
		}
	} else {
		untracked, err := c.stageSelected(ctx, dir, opts.IncludeUntracked)
		if err != nil {
			return untracked, err
		}
	}

	staged, _, err := c.runWithTimeout(ctx, buildGitArgs(dir, "diff", "--cached", "--name-only")...)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(staged) == "" {
		return nil, scm.ErrNothingToCommit
	}

	args := make([]string, 0)
	if !opts.Author.IsZero() {
		// a fresh clone on a build agent has no identity configured
		args = append(args, "-c", "user.name="+opts.Author.Name,
			"-c", "user.email="+opts.Author.Email)
	}
	commitArgs := []string{"commit", "-m", opts.Message}
	if !opts.Author.IsZero() {
		commitArgs = append(commitArgs, "--author", opts.Author.String())
	}
	args = append(args, buildGitArgs(dir, commitArgs...)...)
	if _, _, err := c.run(ctx, args...); err != nil {
		return nil, err
	}

	c.logger().Info("committed", zap.String("dir", dir),
		zap.Strings("files", strings.Fields(staged)))
	return nil, nil
}

func (c *Client) stageSelected(ctx context.Context, dir string,
	include map[string]bool) (*scm.UntrackedFiles, error) {

	untracked, err := c.untrackedFiles(ctx, dir)
	if err != nil {
		return nil, err
	}
	for _, f := range untracked.Filename {
		if _, ok := include[f]; !ok {
			return untracked, scm.ErrUntrackedFiles
		}
	}

	// Stage tracked changes.
	if _, _, err := c.run(ctx, buildGitArgs(dir, "add", "-u")...); err != nil {
		return nil, err
	}

	for _, f := range untracked.Filename {
		if include[f] {
			if _, _, err := c.run(ctx, buildGitArgs(dir, "add", "--", f)...); err != nil {
				return nil, err
			}
		}
	}
	return nil, nil
}

func (c *Client) untrackedFiles(ctx context.Context, dir string) (*scm.UntrackedFiles, error) {
	ret := &scm.UntrackedFiles{
		Filename: make([]string, 0),
	}

	out, _, err := c.runWithTimeout(ctx, buildGitArgs(dir, "ls-files", "--others", "--exclude-standard")...)
	if err != nil {
		return ret, err
	}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		f := strings.TrimSpace(line)
		if f == "" {
			continue
		}
		ret.Filename = append(ret.Filename, f)
	}
	return ret, nil
}
