/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package e2e

import "errors"

var (
	ErrTimedOut      = errors.New("timed out")
	ErrNoForge       = errors.New("no forge service found")
	ErrMissingGitURL = errors.New("no git clone url")
	ErrNothingToPush = errors.New("commit did not advance the branch")
)
