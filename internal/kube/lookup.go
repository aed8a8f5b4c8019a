/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package kube

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

var (
	RouteResource = schema.GroupVersionResource{
		Group: "route.openshift.io", Version: "v1", Resource: "routes"}
	BuildConfigResource = schema.GroupVersionResource{
		Group: "build.openshift.io", Version: "v1", Resource: "buildconfigs"}
)

// ServiceURL returns the URL of service name in namespace: the host of a
// route of the same name when there is one, else the service's cluster IP
// and first port. It returns "" when neither exists.
func (c *Client) ServiceURL(ctx context.Context, name string, namespace string) (string, error) {
	ns := c.namespace(namespace)
	logger := c.logger().With(zap.String("service", name), zap.String("namespace", ns))

	routeURL, err := c.routeURL(ctx, name, ns)
	if err != nil {
		// not every cluster serves routes
		logger.Debug("route lookup failed", zap.Error(err))
	}
	if routeURL != "" {
		return routeURL, nil
	}

	svc, err := c.Core.CoreV1().Services(ns).Get(ctx, name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: service %v/%v: %w", ErrFailedToCallCluster, ns, name, err)
	}
	ip := svc.Spec.ClusterIP
	if ip == "" || strings.EqualFold(ip, "None") || len(svc.Spec.Ports) == 0 {
		logger.Debug("service has no cluster address")
		return "", nil
	}
	return fmt.Sprintf("http://%v:%v", ip, svc.Spec.Ports[0].Port), nil
}

func (c *Client) routeURL(ctx context.Context, name string, ns string) (string, error) {
	if c.Dynamic == nil {
		return "", nil
	}
	route, err := c.Dynamic.Resource(RouteResource).Namespace(ns).Get(ctx, name,
		metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	host, _, _ := unstructured.NestedString(route.Object, "spec", "host")
	if host == "" {
		return "", nil
	}
	scheme := "http"
	if tls, found, _ := unstructured.NestedMap(route.Object, "spec", "tls"); found && tls != nil {
		scheme = "https"
	}
	return scheme + "://" + host, nil
}

// BuildConfigAnnotation returns the value of annotation key on the
// BuildConfig name.
func (c *Client) BuildConfigAnnotation(ctx context.Context, namespace string, name string,
	key string) (string, error) {

	ns := c.namespace(namespace)
	bc, err := c.Dynamic.Resource(BuildConfigResource).Namespace(ns).Get(ctx, name,
		metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return "", fmt.Errorf("%w: %v/%v", ErrBuildConfigNotFound, ns, name)
	}
	if err != nil {
		return "", fmt.Errorf("%w: build config %v/%v: %w", ErrFailedToCallCluster,
			ns, name, err)
	}
	value := bc.GetAnnotations()[key]
	if value == "" {
		return "", fmt.Errorf("%w: %v on build config %v/%v", ErrAnnotationMissing,
			key, ns, name)
	}
	return value, nil
}

// GitCloneURL returns the clone URL recorded on a project's BuildConfig.
func (c *Client) GitCloneURL(ctx context.Context, namespace string, project string) (string, error) {
	return c.BuildConfigAnnotation(ctx, namespace, project, GitCloneURLAnnotation)
}
