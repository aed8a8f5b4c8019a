/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikeb26/forgectl/internal/forge"
	"go.uber.org/zap"
)

// Runner executes a wizard command against the command service, one page at
// a time.
type Runner struct {
	API       forge.API
	Namespace string
	Checker   Checker
	Logger    *zap.Logger
}

func NewRunner(api forge.API, namespace string, strict bool, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		API:       api,
		Namespace: namespace,
		Checker:   Checker{Strict: strict, Logger: logger},
		Logger:    logger,
	}
}

// Execute runs command through numberOfPages pages and then executes it.
//
// The first page is built from the command's input definition. Each later
// page is validated (any properties the server fills in are offered to vp
// again), advanced with next, and populated from the properties the next
// step returned. The final page is validated and executed.
func (r *Runner) Execute(ctx context.Context, command string, vp ValueProvider,
	numberOfPages int) (*forge.ExecutionResult, error) {

	if numberOfPages < 1 {
		return nil, ErrInvalidPageCount
	}
	ctx, reqID := forge.EnsureRequestID(ctx)
	logger := r.logger().With(zap.String("command", command),
		zap.String("request_id", reqID))

	result, err := r.execute(ctx, logger, command, vp, numberOfPages)
	if err != nil {
		var apiErr *forge.APIError
		if errors.As(err, &apiErr) {
			logger.Error("forge call failed", zap.String("op", apiErr.Op),
				zap.Int("status", apiErr.StatusCode),
				zap.String("response_entity", apiErr.Body))
		} else {
			logger.Error("wizard failed", zap.Error(err))
		}
		return nil, err
	}
	logger.Info("command executed", zap.Stringer("result", result))
	return result, nil
}

func (r *Runner) execute(ctx context.Context, logger *zap.Logger, command string,
	vp ValueProvider, numberOfPages int) (*forge.ExecutionResult, error) {

	commandInput, err := r.API.CommandInput(ctx, command)
	if err != nil {
		return nil, err
	}
	req := &forge.ExecutionRequest{
		Namespace: r.Namespace,
		Inputs:    make([]forge.InputValueDTO, 0),
	}
	if _, err := AddPage(&req.Inputs, CommandProperties(commandInput), vp, 0); err != nil {
		return nil, err
	}

	for page := 1; page < numberOfPages; page++ {
		next, err := r.validateAndNextStep(ctx, logger, command, req, vp)
		if err != nil {
			return nil, err
		}
		if err := r.addNextPage(ctx, command, req, vp, next, page); err != nil {
			return nil, err
		}
		req.SetStepIndex(page)
	}

	return r.validateAndExecute(ctx, logger, command, req, vp)
}

func (r *Runner) validateAndNextStep(ctx context.Context, logger *zap.Logger,
	command string, req *forge.ExecutionRequest,
	vp ValueProvider) (*forge.NextStepResult, error) {

	result, err := r.validateAndUpdatePageValues(ctx, logger, command, req, vp)
	if err != nil {
		return nil, err
	}
	if err := r.Checker.CheckValidAndCanMoveNext(req, result); err != nil {
		return nil, err
	}
	return r.API.NextStep(ctx, command, req)
}

func (r *Runner) validateAndExecute(ctx context.Context, logger *zap.Logger,
	command string, req *forge.ExecutionRequest,
	vp ValueProvider) (*forge.ExecutionResult, error) {

	result, err := r.validateAndUpdatePageValues(ctx, logger, command, req, vp)
	if err != nil {
		return nil, err
	}
	if err := r.Checker.CheckValidAndCanExecute(result); err != nil {
		return nil, err
	}
	execResult, err := r.API.Execute(ctx, command, req)
	if err != nil {
		return nil, err
	}
	if err := r.Checker.CheckExecutionWorked(execResult); err != nil {
		return nil, err
	}
	return execResult, nil
}

// addNextPage adds the page the wizard just moved to. Some commands return
// no properties from next; the current properties are then fetched with a
// fresh validate.
func (r *Runner) addNextPage(ctx context.Context, command string,
	req *forge.ExecutionRequest, vp ValueProvider, next *forge.NextStepResult,
	page int) error {

	props := CommandProperties(next)
	if len(props) == 0 {
		result, err := r.API.Validate(ctx, command, req)
		if err != nil {
			return err
		}
		props = CommandProperties(result)
		if len(props) == 0 {
			return fmt.Errorf("%w: %v page %v", ErrNoProperties, command, page)
		}
	}
	_, err := AddPage(&req.Inputs, props, vp, page)
	return err
}

// validateAndUpdatePageValues validates the current request and merges any
// values the provider has for the properties the server returned back into
// the request, so choices that validate just populated get answered.
func (r *Runner) validateAndUpdatePageValues(ctx context.Context, logger *zap.Logger,
	command string, req *forge.ExecutionRequest,
	vp ValueProvider) (*forge.ValidationResult, error) {

	page := LastPage(req)
	logger.Info("wizard step inputs", zap.Int("page", req.StepNumber()),
		zap.Any("inputs", page))

	result, err := r.API.Validate(ctx, command, req)
	if err != nil {
		return nil, err
	}
	logger.Info("wizard validation", zap.Stringer("result", result))

	updates := make(Page)
	if err := UpdatePageValues(CommandProperties(result), vp, req.StepNumber(),
		updates); err != nil {
		return nil, err
	}
	AddPageValues(&req.Inputs, updates)
	return result, nil
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
