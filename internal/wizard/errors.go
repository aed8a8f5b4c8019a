/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package wizard

import (
	"errors"
)

var (
	ErrNotValid           = errors.New("wizard page is not valid")
	ErrCannotMoveNext     = errors.New("wizard cannot move to the next step")
	ErrCannotExecute      = errors.New("wizard cannot execute")
	ErrExecutionFailed    = errors.New("wizard execution was not successful")
	ErrNoProperties       = errors.New("validation returned no command properties")
	ErrChoiceNotAvailable = errors.New("value is not one of the available choices")
	ErrInvalidCommandInfo = errors.New("invalid command input")
	ErrInvalidPageCount   = errors.New("number of pages must be at least 1")
	ErrNoAnswers          = errors.New("no answers for command")
)
