/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package wizard

import (
	"fmt"

	"github.com/mikeb26/forgectl/internal/forge"
	"go.uber.org/zap"
)

// Checker verifies wizard responses. In lenient mode (Strict false) a
// failed check is logged and reported as success so a run can be observed
// end to end against a server whose state flags are unreliable.
type Checker struct {
	Strict bool
	Logger *zap.Logger
}

func (c Checker) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c Checker) fail(err error, fields ...zap.Field) error {
	if c.Strict {
		return err
	}
	c.logger().Info(err.Error(), fields...)
	return nil
}

func (c Checker) CheckValidAndCanExecute(result *forge.ValidationResult) error {
	if result == nil {
		return fmt.Errorf("%w: no validation result", ErrNotValid)
	}
	fields := []zap.Field{
		zap.Bool("valid", result.Valid()),
		zap.Bool("can_execute", result.CanExecute()),
	}
	if !result.Valid() {
		return c.fail(fmt.Errorf("%w: %v", ErrNotValid, result.ValidationMessage()), fields...)
	}
	if !result.CanExecute() {
		return c.fail(fmt.Errorf("%w: %v", ErrCannotExecute, result.ValidationMessage()), fields...)
	}
	return nil
}

func (c Checker) CheckValidAndCanMoveNext(req *forge.ExecutionRequest,
	result *forge.ValidationResult) error {

	prefix := fmt.Sprintf("page %v", req.StepNumber())
	if result == nil {
		return fmt.Errorf("%w: %v: no validation result", ErrNotValid, prefix)
	}
	fields := []zap.Field{
		zap.Int("page", req.StepNumber()),
		zap.Bool("valid", result.Valid()),
		zap.Bool("can_move_next", result.CanMoveToNextStep()),
	}
	if !result.Valid() {
		return c.fail(fmt.Errorf("%w: %v: %v", ErrNotValid, prefix,
			result.ValidationMessage()), fields...)
	}
	if !result.CanMoveToNextStep() {
		return c.fail(fmt.Errorf("%w: %v: %v", ErrCannotMoveNext, prefix,
			result.ValidationMessage()), fields...)
	}
	return nil
}

// CheckExecutionWorked is not relaxed by lenient mode: a failed execute
// means the command did not happen.
func (c Checker) CheckExecutionWorked(result *forge.ExecutionResult) error {
	if result == nil {
		return fmt.Errorf("%w: no execution result", ErrExecutionFailed)
	}
	c.logger().Info("got execution result", zap.Stringer("result", result))
	if !result.Successful() {
		return fmt.Errorf("%w: %v", ErrExecutionFailed, result)
	}
	return nil
}

func CheckValidCommandInput(info *forge.CommandInputDTO) error {
	switch {
	case info == nil:
		return fmt.Errorf("%w: no command input", ErrInvalidCommandInfo)
	case info.Metadata == nil:
		return fmt.Errorf("%w: missing metadata", ErrInvalidCommandInfo)
	case len(info.Inputs) == 0:
		return fmt.Errorf("%w: no inputs", ErrInvalidCommandInfo)
	case info.State == nil:
		return fmt.Errorf("%w: missing state", ErrInvalidCommandInfo)
	}
	return nil
}
