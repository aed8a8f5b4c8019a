/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package git

import (
	"errors"
)

var (
	ErrFailedToExecuteGit = errors.New("failed to execute git")
	ErrNotGitRepo         = errors.New("not a git repo")
)
