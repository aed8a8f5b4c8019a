/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package jenkins

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bndr/gojenkins"
	"go.uber.org/zap"
)

type Options struct {
	// Token is the cluster OAuth token; jenkins behind the cluster proxy
	// accepts it as a bearer token.
	Token  string
	TLS    *tls.Config
	Logger *zap.Logger
	// Timeout bounds each request. Zero means one minute.
	Timeout time.Duration
}

// RemoteServer implements Server with gojenkins.
type RemoteServer struct {
	jenkins *gojenkins.Jenkins
	logger  *zap.Logger
}

var _ Server = (*RemoteServer)(nil)

// NewHTTPClient returns a client which sends opts.Token on every request.
// The same client is used to read console logs.
func NewHTTPClient(opts Options) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	if opts.TLS != nil {
		base.TLSClientConfig = opts.TLS
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Minute
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &bearerTransport{token: opts.Token, base: base},
	}
}

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token == "" {
		return t.base.RoundTrip(req)
	}
	authReq := req.Clone(req.Context())
	authReq.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(authReq)
}

// NewServer connects to the jenkins at url.
func NewServer(ctx context.Context, url string, opts Options) (*RemoteServer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Token == "" {
		logger.Warn("no OAuth token for jenkins; requests are anonymous")
	}
	logger.Info("connecting to jenkins", zap.String("url", url))

	j := gojenkins.CreateJenkins(NewHTTPClient(opts), strings.TrimRight(url, "/"))
	if _, err := j.Init(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrFailedToCallJenkins, url, err)
	}
	return &RemoteServer{jenkins: j, logger: logger}, nil
}

func (s *RemoteServer) job(ctx context.Context, name string) (*gojenkins.Job, error) {
	job, err := s.jenkins.GetJob(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %v", ErrJobNotFound, name)
		}
		return nil, fmt.Errorf("%w: job %v: %w", ErrFailedToCallJenkins, name, err)
	}
	return job, nil
}

func (s *RemoteServer) LastBuild(ctx context.Context, job string) (*Build, error) {
	j, err := s.job(ctx, job)
	if err != nil {
		return nil, err
	}
	if j.Raw == nil || j.Raw.LastBuild.Number <= 0 {
		return nil, nil
	}
	return s.build(ctx, j, job, j.Raw.LastBuild.Number)
}

func (s *RemoteServer) Build(ctx context.Context, job string, number int64) (*Build, error) {
	j, err := s.job(ctx, job)
	if err != nil {
		return nil, err
	}
	return s.build(ctx, j, job, number)
}

func (s *RemoteServer) build(ctx context.Context, j *gojenkins.Job, job string,
	number int64) (*Build, error) {

	b, err := j.GetBuild(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("%w: job %v build %v: %w", ErrFailedToCallJenkins,
			job, number, err)
	}
	ret := &Build{Job: job, Number: number}
	if b.Raw != nil {
		ret.Number = b.Raw.Number
		ret.URL = b.Raw.URL
		ret.Building = b.Raw.Building
		ret.Result = b.Raw.Result
	}
	return ret, nil
}

func (s *RemoteServer) Jobs(ctx context.Context) ([]Item, error) {
	jobs, err := s.jenkins.GetAllJobNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: jobs: %w", ErrFailedToCallJenkins, err)
	}
	ret := make([]Item, 0, len(jobs))
	for _, j := range jobs {
		ret = append(ret, Item{Name: j.Name, URL: j.Url})
	}
	return ret, nil
}

func (s *RemoteServer) Views(ctx context.Context) ([]Item, error) {
	views, err := s.jenkins.GetAllViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: views: %w", ErrFailedToCallJenkins, err)
	}
	ret := make([]Item, 0, len(views))
	for _, v := range views {
		// gojenkins leaves a nil entry for a view it failed to load
		if v == nil || v.Raw == nil {
			continue
		}
		ret = append(ret, Item{Name: v.Raw.Name, URL: v.Raw.URL})
	}
	return ret, nil
}

// gojenkins reports a missing job as an error carrying the status code.
func isNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "404") || strings.Contains(msg, "not found")
}
