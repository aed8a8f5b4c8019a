/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package store

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrEmptyProjectName = errors.New("project name must not be empty")
	ErrEmptyFilename    = errors.New("json project store filename must not be empty")
	ErrPathIsDirectory  = errors.New("json project store path is a directory, want file")
)
