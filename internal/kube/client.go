/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package kube answers the handful of cluster questions the test harness
// needs: where a service is reachable and what a project's BuildConfig
// says about its git repository.
package kube

import (
	"crypto/tls"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

const (
	GitCloneURLAnnotation = "fabric8.io/git-clone-url"
	DefaultNamespace      = "default"
)

type Client struct {
	Core    kubernetes.Interface
	Dynamic dynamic.Interface
	// Namespace is used when a lookup does not name one.
	Namespace string
	// Token is the bearer token of the current context, if any.
	Token string
	// TLS mirrors the transport security of the current context. Other
	// cluster hosted services (jenkins) are reached with it.
	TLS    *tls.Config
	Logger *zap.Logger
}

// NewClient loads kubeconfig the way kubectl does. An empty path uses
// $KUBECONFIG, then ~/.kube/config, then the in-cluster config.
func NewClient(kubeconfig string, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		rules.ExplicitPath = kubeconfig
	}
	cc := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules,
		&clientcmd.ConfigOverrides{})

	restCfg, err := cc.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadKubeConfig, err)
	}
	ns, _, err := cc.Namespace()
	if err != nil || ns == "" {
		ns = DefaultNamespace
	}
	return NewClientForConfig(restCfg, ns, logger)
}

func NewClientForConfig(restCfg *rest.Config, namespace string,
	logger *zap.Logger) (*Client, error) {

	core, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadKubeConfig, err)
	}
	dyn, err := dynamic.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadKubeConfig, err)
	}
	tlsCfg, err := rest.TLSConfigFor(restCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: tls: %w", ErrFailedToLoadKubeConfig, err)
	}
	token, err := bearerToken(restCfg)
	if err != nil {
		return nil, err
	}
	return &Client{
		Core:      core,
		Dynamic:   dyn,
		Namespace: namespace,
		Token:     token,
		TLS:       tlsCfg,
		Logger:    logger,
	}, nil
}

func bearerToken(restCfg *rest.Config) (string, error) {
	if restCfg.BearerToken != "" || restCfg.BearerTokenFile == "" {
		return restCfg.BearerToken, nil
	}
	data, err := os.ReadFile(restCfg.BearerTokenFile)
	if err != nil {
		return "", fmt.Errorf("%w: token file %v: %w", ErrFailedToLoadKubeConfig,
			restCfg.BearerTokenFile, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (c *Client) namespace(ns string) string {
	if ns != "" {
		return ns
	}
	if c.Namespace != "" {
		return c.Namespace
	}
	return DefaultNamespace
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
