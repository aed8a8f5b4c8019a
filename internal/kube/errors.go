/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package kube

import "errors"

var ErrFailedToLoadKubeConfig = errors.New("failed to load kubernetes config")
var ErrBuildConfigNotFound = errors.New("build config not found")
var ErrAnnotationMissing = errors.New("annotation missing")
var ErrFailedToCallCluster = errors.New("failed to call cluster")
