/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package main

import (
	"context"

	"github.com/mikeb26/forgectl/internal/e2e"
	"github.com/mikeb26/forgectl/internal/forge"
	"github.com/mikeb26/forgectl/internal/jenkins"
	"github.com/mikeb26/forgectl/internal/kube"
	"github.com/mikeb26/forgectl/internal/wizard"
	"go.uber.org/zap"
)

// cluster returns a client for the current kube context. When the
// command can do without one (required is false) a failure is only
// logged and nil is returned.
func (cliCtx *cliContext) cluster(required bool) (*kube.Client, error) {
	c, err := kube.NewClient(cliCtx.cfg.Kubeconfig, cliCtx.logger)
	if err == nil {
		return c, nil
	}
	if required {
		return nil, err
	}
	cliCtx.logger.Debug("continuing without a cluster", zap.Error(err))
	return nil, nil
}

func (cliCtx *cliContext) userNamespace(c *kube.Client) string {
	switch {
	case cliCtx.cfg.Namespace != "":
		return cliCtx.cfg.Namespace
	case c != nil:
		return c.Namespace
	}
	return kube.DefaultNamespace
}

// forgeRunner connects to the forge and returns a runner for the user's
// namespace. A cluster is only needed when no forge URL is configured.
func (cliCtx *cliContext) forgeRunner(ctx context.Context) (*wizard.Runner, error) {
	c, err := cliCtx.cluster(cliCtx.cfg.ForgeURL == "")
	if err != nil {
		return nil, err
	}
	ns := cliCtx.userNamespace(c)
	client, err := e2e.NewForgeClient(ctx, cliCtx.cfg, c, ns, cliCtx.logger)
	if err != nil {
		return nil, err
	}
	return wizard.NewRunner(client, ns, cliCtx.cfg.Strict, cliCtx.logger), nil
}

func (cliCtx *cliContext) forgeAPI(ctx context.Context) (forge.API, error) {
	runner, err := cliCtx.forgeRunner(ctx)
	if err != nil {
		return nil, err
	}
	return runner.API, nil
}

// support returns everything a full project scenario needs, including
// jenkins.
func (cliCtx *cliContext) support(ctx context.Context, withJenkins bool) (*e2e.Support, error) {
	s, err := e2e.NewSupport(ctx, cliCtx.cfg, cliCtx.logger)
	if err != nil {
		return nil, err
	}
	if !withJenkins {
		return s, nil
	}
	if err := s.ConnectJenkins(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// jenkinsWaiter connects to the jenkins of namespace, or of the configured
// jenkins namespace when namespace is empty.
func (cliCtx *cliContext) jenkinsWaiter(ctx context.Context, namespace string) (*jenkins.Waiter, error) {
	c, err := cliCtx.cluster(cliCtx.cfg.Jenkins.URL == "")
	if err != nil {
		return nil, err
	}
	if namespace == "" {
		namespace = cliCtx.cfg.JenkinsNamespace()
	}
	if namespace == "" {
		namespace = cliCtx.userNamespace(c)
	}
	return e2e.ConnectJenkins(ctx, cliCtx.cfg, c, namespace, cliCtx.logger)
}
