/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package config

import "errors"

var (
	ErrFailedToReadConfig  = errors.New("failed to read config")
	ErrFailedToParseConfig = errors.New("failed to parse config")
	ErrInvalidConfig       = errors.New("invalid config")
	ErrNoHomeDir           = errors.New("could not find user home directory")
)
