/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package jenkins

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultStartTimeout = 10 * time.Minute
)

// Waiter follows a job's builds.
type Waiter struct {
	Server     Server
	HTTP       *http.Client
	JenkinsURL string
	// PollInterval is the minimum time between two polls of a running
	// build. Zero means DefaultPollInterval.
	PollInterval time.Duration
	// StartTimeout bounds WaitForBuildStart. Zero means DefaultStartTimeout.
	StartTimeout time.Duration
	Logger       *zap.Logger
	// Out, when set, receives each new console line as "Build:<n>: <line>".
	Out io.Writer
}

// WaitForBuildStart waits until job has a build numbered minNumber or later
// with a usable URL. A minNumber below 1 accepts any build.
func (w *Waiter) WaitForBuildStart(ctx context.Context, job string,
	minNumber int64) (*Build, error) {

	if minNumber < 1 {
		minNumber = 1
	}
	logger := w.logger().With(zap.String("job", job), zap.Int64("min_build", minNumber))
	deadline := time.Now().Add(w.startTimeout())

	var lastErr error
	for {
		build, err := w.Server.LastBuild(ctx, job)
		switch {
		case err != nil && !errors.Is(err, ErrJobNotFound):
			return nil, err
		case err != nil:
			lastErr = err
		case build == nil || build.Number < minNumber:
			lastErr = fmt.Errorf("waiting for job %v to have build %v", job, minNumber)
		case build.URL == "" || strings.Contains(build.URL, "UNKNOWN"):
			lastErr = fmt.Errorf("waiting for %v to have a valid URL", build)
		default:
			logger.Info("build started", zap.Int64("build", build.Number),
				zap.String("url", build.URL))
			return build, nil
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %w", ErrBuildNotStarted, lastErr)
		}
		logger.Debug("waiting for build", zap.Error(lastErr))
		if err := sleep(ctx, w.pollInterval()); err != nil {
			return nil, err
		}
	}
}

// WaitForBuildCompletion waits for a build of job numbered minNumber or
// later to start, follows its console log until it stops building or
// timeout passes, then requires it to have succeeded.
func (w *Waiter) WaitForBuildCompletion(ctx context.Context, job string, minNumber int64,
	timeout time.Duration) (*Build, error) {

	build, err := w.WaitForBuildStart(ctx, job, minNumber)
	if err != nil {
		return nil, err
	}
	return w.FollowBuild(ctx, job, build, timeout)
}

// FollowBuild tails the console log of build until it stops building or
// timeout passes, then requires it to have succeeded. The build is returned
// along with any failure.
func (w *Waiter) FollowBuild(ctx context.Context, job string, build *Build,
	timeout time.Duration) (*Build, error) {

	if build == nil {
		return nil, fmt.Errorf("%w: job %v", ErrJobNotFound, job)
	}
	var err error
	logger := w.logger().With(zap.String("job", job), zap.Int64("build", build.Number))
	logURI := ConsoleTextURL(build.URL, w.JenkinsURL)
	logger.Info("waiting for build to complete", zap.String("console", logURI))

	end := time.Now().Add(timeout)
	tail := TailStart
	for {
		start := time.Now()
		tail, err = TailLog(ctx, w.HTTP, logURI, tail, w.printLine(build.Number))
		if err != nil {
			logger.Warn("failed to tail build log", zap.Error(err))
		}

		number := build.Number
		build, err = w.Server.Build(ctx, job, number)
		if err != nil {
			return nil, err
		}
		if build == nil {
			return nil, fmt.Errorf("%w: job %v build %v", ErrJobNotFound, job, number)
		}
		if !build.Building || time.Now().After(end) {
			break
		}
		if remaining := w.pollInterval() - time.Since(start); remaining > 0 {
			if err := sleep(ctx, remaining); err != nil {
				return nil, err
			}
		}
	}

	err = DumpLog(ctx, w.HTTP, logURI, func(line string) {
		logger.Info(line)
	})
	if err != nil {
		logger.Warn("failed to dump build log", zap.Error(err))
	}

	if build.Building {
		return build, fmt.Errorf("%w: %v after %v", ErrBuildStillRunning, build, timeout)
	}
	if !build.Succeeded() {
		return build, fmt.Errorf("%w: %v: %v", ErrBuildFailed, build, build.Result)
	}
	logger.Info("build succeeded")
	return build, nil
}

// Tail follows build number of job, or its last build when number is not
// positive, until it completes.
func (w *Waiter) Tail(ctx context.Context, job string, number int64,
	timeout time.Duration) (*Build, error) {

	var build *Build
	var err error
	if number > 0 {
		build, err = w.Server.Build(ctx, job, number)
	} else {
		build, err = w.Server.LastBuild(ctx, job)
	}
	if err != nil {
		return nil, err
	}
	if build == nil {
		return nil, fmt.Errorf("%w: job %v has no builds", ErrJobNotFound, job)
	}
	return w.FollowBuild(ctx, job, build, timeout)
}

func (w *Waiter) printLine(number int64) func(string) {
	return func(line string) {
		if w.Out != nil {
			fmt.Fprintf(w.Out, "Build:%v: %v\n", number, line)
		}
	}
}

func (w *Waiter) pollInterval() time.Duration {
	if w.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return w.PollInterval
}

func (w *Waiter) startTimeout() time.Duration {
	if w.StartTimeout <= 0 {
		return DefaultStartTimeout
	}
	return w.StartTimeout
}

func (w *Waiter) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
