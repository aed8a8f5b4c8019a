/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/mikeb26/forgectl/internal/config"
	"github.com/mikeb26/forgectl/internal/forge"
	"github.com/mikeb26/forgectl/internal/jenkins"
	"github.com/mikeb26/forgectl/internal/kube"
	"github.com/mikeb26/forgectl/internal/scm/git"
	"github.com/mikeb26/forgectl/internal/store"
	"github.com/mikeb26/forgectl/internal/wizard"
	"go.uber.org/zap"
)

// NewSupport connects to the forge of the cluster in the current kube
// context. Jenkins is not contacted; see ConnectJenkins.
func NewSupport(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Support, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cluster, err := kube.NewClient(cfg.Kubeconfig, logger)
	if err != nil {
		return nil, err
	}
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = cluster.Namespace
	}

	forgeClient, err := NewForgeClient(ctx, cfg, cluster, namespace, logger)
	if err != nil {
		return nil, err
	}

	gitClient := git.NewClient()
	gitClient.Logger = logger

	ret := &Support{
		Forge:  forgeClient,
		Runner: wizard.NewRunner(forgeClient, namespace, cfg.Strict, logger),
		Kube:   cluster,
		Git:    gitClient,
		Config: cfg,
		Logger: logger,
	}

	projectsPath, err := config.ProjectsPath()
	if err == nil {
		ret.Store, err = store.NewJSONProjectStore(projectsPath)
	}
	if err != nil {
		logger.Warn("project history disabled", zap.Error(err))
		ret.Store = nil
	}
	return ret, nil
}

// NewForgeClient returns a client for cfg.ForgeURL, or for the forge
// service of namespace when no URL is configured. cluster may be nil when
// cfg.ForgeURL is set.
func NewForgeClient(ctx context.Context, cfg *config.Config, cluster *kube.Client,
	namespace string, logger *zap.Logger) (*forge.Client, error) {

	if logger == nil {
		logger = zap.NewNop()
	}
	forgeURL := cfg.ForgeURL
	if forgeURL == "" && cluster != nil {
		var err error
		forgeURL, err = cluster.ServiceURL(ctx, cfg.ForgeService, namespace)
		if err != nil {
			return nil, err
		}
	}
	if forgeURL == "" {
		return nil, fmt.Errorf("%w: %v in namespace %v", ErrNoForge, cfg.ForgeService, namespace)
	}
	logger.Info("using forge", zap.String("url", forgeURL))

	c := forge.NewClient(forgeURL)
	c.Logger = logger
	if cluster == nil {
		return c, nil
	}
	c.Token = cluster.Token
	if cluster.TLS != nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = cluster.TLS
		c.HTTPClient.Transport = transport
	}
	return c, nil
}

// ConnectJenkins finds and connects to the jenkins serving namespace and
// returns a Waiter configured from cfg which echoes build logs to stdout.
func ConnectJenkins(ctx context.Context, cfg *config.Config, cluster *kube.Client,
	namespace string, logger *zap.Logger) (*jenkins.Waiter, error) {

	if logger == nil {
		logger = zap.NewNop()
	}
	var lookup jenkins.ServiceLookup
	opts := jenkins.Options{Logger: logger}
	if cluster != nil {
		lookup = cluster
		opts.Token = cluster.Token
		opts.TLS = cluster.TLS
	}
	jenkinsURL, err := jenkins.ResolveURL(ctx, lookup, namespace, cfg.Jenkins.URL, logger)
	if err != nil {
		return nil, err
	}
	server, err := jenkins.NewServer(ctx, jenkinsURL, opts)
	if err != nil {
		return nil, err
	}
	return &jenkins.Waiter{
		Server:       server,
		HTTP:         jenkins.NewHTTPClient(opts),
		JenkinsURL:   jenkinsURL,
		PollInterval: cfg.Jenkins.PollInterval,
		StartTimeout: cfg.Jenkins.StartTimeout,
		Logger:       logger,
		Out:          os.Stdout,
	}, nil
}

// ConnectJenkins attaches a jenkins Waiter to s for the jenkins namespace
// in s.Config.
func (s *Support) ConnectJenkins(ctx context.Context) error {
	cluster, _ := s.Kube.(*kube.Client)
	ns := s.Config.JenkinsNamespace()
	if ns == "" {
		ns = s.Runner.Namespace
	}
	waiter, err := ConnectJenkins(ctx, s.Config, cluster, ns, s.logger())
	if err != nil {
		return err
	}
	s.Waiter = waiter
	return nil
}
