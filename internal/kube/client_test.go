/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package kube

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/rest"
)

const testKubeConfig = `apiVersion: v1
kind: Config
clusters:
- name: test
  cluster:
    server: https://api.example.com:6443
    insecure-skip-tls-verify: true
users:
- name: dev
  user:
    token: sha256~abc
contexts:
- name: dev
  context:
    cluster: test
    user: dev
    namespace: user-che
current-context: dev
`

func TestNewClientFromKubeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(testKubeConfig), 0600))

	c, err := NewClient(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "user-che", c.Namespace)
	assert.Equal(t, "sha256~abc", c.Token)
	require.NotNil(t, c.TLS)
	assert.True(t, c.TLS.InsecureSkipVerify)
}

func TestNewClientMissingConfig(t *testing.T) {
	_, err := NewClient(filepath.Join(t.TempDir(), "absent"), nil)
	assert.ErrorIs(t, err, ErrFailedToLoadKubeConfig)
}

func TestBearerTokenFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("file-token\n"), 0600))

	token, err := bearerToken(&rest.Config{BearerTokenFile: path})
	require.NoError(t, err)
	assert.Equal(t, "file-token", token)

	token, err = bearerToken(&rest.Config{BearerToken: "inline", BearerTokenFile: path})
	require.NoError(t, err)
	assert.Equal(t, "inline", token)
}
