/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package jenkins

import "errors"

var ErrJobNotFound = errors.New("jenkins job not found")
var ErrNoJenkins = errors.New("no jenkins service found")
var ErrFailedToCallJenkins = errors.New("failed to call jenkins")
var ErrFailedToReadLog = errors.New("failed to read build log")
var ErrBuildNotStarted = errors.New("build did not start")
var ErrBuildFailed = errors.New("build did not succeed")
var ErrBuildStillRunning = errors.New("build not finished")
