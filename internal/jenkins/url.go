/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package jenkins

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.uber.org/zap"
)

const (
	ServiceName = "jenkins"
	DefaultURL  = "http://jenkins/"
	URLEnvVar   = "JENKINS_URL"
)

// ServiceLookup finds the externally reachable URL of a cluster service. An
// empty URL with a nil error means the service does not exist.
type ServiceLookup interface {
	ServiceURL(ctx context.Context, name string, namespace string) (string, error)
}

// ResolveURL returns the URL of the jenkins service in namespace. When the
// cluster has no such service it falls back to $JENKINS_URL, then to
// fallback, then to DefaultURL. lookup may be nil.
func ResolveURL(ctx context.Context, lookup ServiceLookup, namespace string,
	fallback string, logger *zap.Logger) (string, error) {

	if logger == nil {
		logger = zap.NewNop()
	}
	ret := ""
	if lookup != nil {
		svcURL, err := lookup.ServiceURL(ctx, ServiceName, namespace)
		if err != nil {
			logger.Warn("jenkins service lookup failed", zap.String("namespace", namespace),
				zap.Error(err))
		}
		ret = svcURL
	}
	if strings.TrimSpace(ret) == "" {
		ret = os.Getenv(URLEnvVar)
	}
	if strings.TrimSpace(ret) == "" {
		ret = fallback
	}
	if strings.TrimSpace(ret) == "" {
		ret = DefaultURL
	}
	if !hasHost(ret) {
		return "", fmt.Errorf("%w: namespace %v: %q", ErrNoJenkins, namespace, ret)
	}
	return ret, nil
}

func hasHost(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host != "" && host != "null"
}

// ConsoleTextURL returns the plain text console log URL of a build. A
// relative build URL is joined onto jenkinsURL.
func ConsoleTextURL(buildURL string, jenkinsURL string) string {
	logURI := strings.TrimRight(buildURL, "/") + "/consoleText"
	if strings.Contains(logURI, "://") {
		return logURI
	}
	return pathJoin(jenkinsURL, logURI)
}

func pathJoin(base string, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
