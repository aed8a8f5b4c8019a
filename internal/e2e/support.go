/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package e2e drives complete scenarios against a live fabric8
// installation: create a project through the forge wizard, watch its
// pipeline build, push a change and watch the rebuild.
package e2e

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mikeb26/forgectl/internal/config"
	"github.com/mikeb26/forgectl/internal/forge"
	"github.com/mikeb26/forgectl/internal/jenkins"
	"github.com/mikeb26/forgectl/internal/scm"
	"github.com/mikeb26/forgectl/internal/store"
	"github.com/mikeb26/forgectl/internal/wizard"
	"go.uber.org/zap"
)

const (
	QuickstartPages          = 4
	ConfigureGitAccountPages = 2

	ReadMeFile           = "ReadMe.md"
	RebuildCommitMessage = "dummy commit to trigger a rebuild"
	projectNameFormat    = "Jan-02-at-15-04-05"
)

// BuildConfigs resolves where a project's source lives.
type BuildConfigs interface {
	GitCloneURL(ctx context.Context, namespace string, project string) (string, error)
}

type Support struct {
	Forge  forge.API
	Runner *wizard.Runner
	Waiter *jenkins.Waiter
	Kube   BuildConfigs
	Git    scm.Client
	// Store, when set, records every project created or rebuilt.
	Store  store.ProjectStore
	Config *config.Config
	Logger *zap.Logger
	Now    func() time.Time

	// Pipeline is chosen for new projects; empty means
	// forge.PipelineCanaryReleaseAndStage.
	Pipeline string
}

// GenerateProjectName returns prefix followed by the current time, e.g.
// "itestmar-04-at-15-04-05".
func (s *Support) GenerateProjectName(prefix string) string {
	name := prefix + strings.ToLower(s.now().Format(projectNameFormat))
	s.logger().Info("creating project", zap.String("project", name),
		zap.String("namespace", s.Runner.Namespace))
	return name
}

// CreateAndBuildProject creates a new quickstart project of projectType,
// waits for its first pipeline build to pass and then checks that a pushed
// change builds too.
func (s *Support) CreateAndBuildProject(ctx context.Context, prefix string,
	projectType string) (*store.Project, error) {

	name := s.GenerateProjectName(prefix)
	vp := wizard.ValueProviderFunc(func(prop string, dto forge.PropertyDTO,
		page int) (any, error) {

		switch prop {
		case "gitProvider":
			return s.Config.Git.Provider, nil
		case "named":
			return name, nil
		case "type":
			return wizard.ChooseValue(prop, dto, page, projectType)
		case "pipeline":
			return wizard.ChooseValue(prop, dto, page, s.pipeline())
		}
		return nil, nil
	})

	if _, err := s.Runner.Execute(ctx, forge.CommandNewQuickstart, vp, QuickstartPages); err != nil {
		return nil, err
	}
	project := store.Project{
		Name:      name,
		Namespace: s.Runner.Namespace,
		Command:   forge.CommandNewQuickstart,
		Type:      projectType,
	}
	s.record(project)

	first, err := s.Waiter.WaitForBuildCompletion(ctx, name, 1, s.Config.Jenkins.BuildTimeout)
	if first != nil {
		project.LastBuild = first.Number
		s.record(project)
	}
	if err != nil {
		return s.stored(project), err
	}

	last, err := s.CodeChangeTriggersWorkingBuild(ctx, name, first)
	if last != nil {
		project.LastBuild = last.Number
	}
	return s.stored(project), err
}

// stored returns the store's record of p, which carries the fields filled
// in along the way, or p itself when there is no store.
func (s *Support) stored(p store.Project) *store.Project {
	if s.Store != nil {
		if rec, err := s.Store.Get(p.Namespace, p.Name); err == nil {
			return &rec
		}
	}
	return &p
}

// CodeChangeTriggersWorkingBuild clones project, commits a change to its
// ReadMe, pushes it and waits for the build after firstBuild to pass.
func (s *Support) CodeChangeTriggersWorkingBuild(ctx context.Context, project string,
	firstBuild *jenkins.Build) (*jenkins.Build, error) {

	logger := s.logger().With(zap.String("project", project))
	gitURL, err := s.gitCloneURL(ctx, project)
	if err != nil {
		return nil, err
	}

	dir := s.Config.ProjectDir(project)
	creds := s.credentials()
	if err := s.Git.Clone(ctx, gitURL, dir, scm.CloneOptions{Credentials: creds}); err != nil {
		return nil, err
	}

	readme := filepath.Join(dir, ReadMeFile)
	mustAdd, err := s.touchReadMe(readme)
	if err != nil {
		return nil, err
	}

	logger.Info("committing change", zap.String("file", readme))
	_, err = s.Git.Commit(ctx, dir, scm.CommitOptions{
		Message:          RebuildCommitMessage,
		Author:           s.author(),
		AddAll:           mustAdd,
		IncludeUntracked: map[string]bool{},
	})
	if err != nil {
		return nil, err
	}
	if err := s.checkAhead(ctx, dir); err != nil {
		return nil, err
	}
	if err := s.Git.Push(ctx, dir, "origin", creds); err != nil {
		return nil, err
	}
	logger.Info("pushed change", zap.String("file", readme))

	nextBuild := int64(1)
	if firstBuild != nil {
		nextBuild = firstBuild.Number + 1
	}
	build, err := s.Waiter.WaitForBuildCompletion(ctx, project, nextBuild,
		s.Config.Jenkins.BuildTimeout)
	if build != nil {
		s.recordBuild(project, gitURL, build.Number)
	}
	return build, err
}

// gitCloneURL waits for the project's BuildConfig to carry its clone URL;
// the annotation is written after the wizard returns.
func (s *Support) gitCloneURL(ctx context.Context, project string) (string, error) {
	gitURL := ""
	err := WaitFor(ctx, s.Config.Jenkins.StartTimeout, s.Config.Jenkins.PollInterval,
		func(ctx context.Context) error {
			var err error
			gitURL, err = s.Kube.GitCloneURL(ctx, s.Runner.Namespace, project)
			if err != nil {
				return err
			}
			if gitURL == "" {
				return fmt.Errorf("%w: %v", ErrMissingGitURL, project)
			}
			return nil
		})
	return gitURL, err
}

// checkAhead fails unless the commit left the clone ahead of its upstream,
// since otherwise the push cannot trigger a build.
func (s *Support) checkAhead(ctx context.Context, dir string) error {
	status, err := s.Git.Status(ctx, dir)
	if err != nil {
		return err
	}
	if !status.Clean() {
		s.logger().Warn("uncommitted changes left in clone", zap.String("dir", dir))
	}
	if status.Upstream != "" && status.Ahead == 0 {
		return fmt.Errorf("%w: %v is not ahead of %v", ErrNothingToPush, status.Branch,
			status.Upstream)
	}
	return nil
}

// PushChange runs CodeChangeTriggersWorkingBuild against an existing
// project, expecting a build newer than its current last build.
func (s *Support) PushChange(ctx context.Context, project string) (*jenkins.Build, error) {
	last, err := s.Waiter.Server.LastBuild(ctx, project)
	if err != nil {
		return nil, err
	}
	return s.CodeChangeTriggersWorkingBuild(ctx, project, last)
}

// touchReadMe appends a timestamp to the readme and reports whether the
// file is new.
func (s *Support) touchReadMe(path string) (bool, error) {
	mustAdd := false
	text, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		mustAdd = true
	} else if err != nil {
		return false, err
	}
	text = append(text, []byte("\nupdated at: "+s.now().Format(time.UnixDate))...)
	return mustAdd, os.WriteFile(path, text, 0o644)
}

// Account is a git account registered with the forge.
type Account struct {
	Provider string
	UserName string
	Email    string
	Password string
}

func AccountFromConfig(cfg *config.Config) Account {
	return Account{
		Provider: cfg.Git.Provider,
		UserName: cfg.Git.User,
		Email:    cfg.Git.Email,
		Password: cfg.Git.Password,
	}
}

// ConfigureGitAccount registers account with the forge so that it can
// create repositories on the user's behalf.
func (s *Support) ConfigureGitAccount(ctx context.Context, account Account) (*forge.ExecutionResult, error) {
	info, err := s.Forge.CommandInput(ctx, forge.CommandConfigureGitAccount)
	if err != nil {
		return nil, err
	}
	s.logger().Info("command input", zap.Stringer("input", info))
	if err := wizard.CheckValidCommandInput(info); err != nil {
		return nil, err
	}

	vp := wizard.MapValueProvider{Values: map[string]any{
		"gitProvider": account.Provider,
		"gitUserName": account.UserName,
		"gitEmail":    account.Email,
		"gitPassword": account.Password,
	}}
	return s.Runner.Execute(ctx, forge.CommandConfigureGitAccount, vp, ConfigureGitAccountPages)
}

// WaitFor calls fn every interval until it returns nil or timeout passes,
// in which case the last error is returned.
func WaitFor(ctx context.Context, timeout time.Duration, interval time.Duration,
	fn func(ctx context.Context) error) error {

	deadline := time.Now().Add(timeout)
	for {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w after %v: %w", ErrTimedOut, timeout, err)
		}
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (s *Support) credentials() *scm.Credentials {
	return &scm.Credentials{Username: s.Config.Git.User, Password: s.Config.Git.Password}
}

func (s *Support) author() scm.Author {
	return scm.Author{Name: s.Config.Git.User, Email: s.Config.Git.Email}
}

func (s *Support) record(p store.Project) {
	if s.Store == nil {
		return
	}
	if err := s.Store.Put(p); err != nil {
		s.logger().Warn("failed to record project", zap.String("project", p.Name),
			zap.Error(err))
	}
}

func (s *Support) recordBuild(project string, gitURL string, number int64) {
	if s.Store == nil {
		return
	}
	p, err := s.Store.Get(s.Runner.Namespace, project)
	if err != nil {
		p = store.Project{Name: project, Namespace: s.Runner.Namespace}
	}
	p.GitCloneURL = gitURL
	p.LastBuild = number
	s.record(p)
}

func (s *Support) pipeline() string {
	if s.Pipeline == "" {
		return forge.PipelineCanaryReleaseAndStage
	}
	return s.Pipeline
}

func (s *Support) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Support) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
