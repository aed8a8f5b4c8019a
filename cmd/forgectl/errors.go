/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package main

import (
	"errors"
)

var (
	ErrPasswordRequired = errors.New("a git password is required; set GIT_PASSWORD or pass --password")
	ErrNoProjectStore   = errors.New("project history is unavailable")
	ErrUnknownPipeline  = errors.New("unknown pipeline")
	ErrConfigExists     = errors.New("config file already exists; use --force to overwrite")
)
