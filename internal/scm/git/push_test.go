/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package git

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mikeb26/forgectl/internal/scm"
)

func TestPush_DefaultsRemoteAndSendsCredentials(t *testing.T) {
	logPath := setupMockGit(t, nil)

	creds := &scm.Credentials{Username: "gogsadmin", Password: "RedHat$1"}
	c := NewClient()
	if err := c.Push(context.Background(), "/tmp/repo", "", creds); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	logs := readMockGitLog(t, logPath)
	want := "-c http.extraHeader=Authorization: " + creds.BasicAuth() +
		" -C /tmp/repo push origin HEAD"
	if len(logs) != 1 || logs[0] != want {
		t.Fatalf("unexpected git calls: %#v", logs)
	}
}

func TestPush_WithoutCredentials(t *testing.T) {
	logPath := setupMockGit(t, nil)

	c := NewClient()
	if err := c.Push(context.Background(), "/tmp/repo", "upstream", nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	logs := readMockGitLog(t, logPath)
	if len(logs) != 1 || logs[0] != "-C /tmp/repo push upstream HEAD" {
		t.Fatalf("unexpected git calls: %#v", logs)
	}
}

func TestPush_FailureDoesNotLeakCredentials(t *testing.T) {
	setupMockGit(t, map[string]string{"MOCK_GIT_FAIL": "push"})

	creds := &scm.Credentials{Username: "gogsadmin", Password: "RedHat$1"}
	c := NewClient()
	err := c.Push(context.Background(), "/tmp/repo", "origin", creds)
	if !errors.Is(err, ErrFailedToExecuteGit) {
		t.Fatalf("expected ErrFailedToExecuteGit, got %v", err)
	}
	encoded := strings.TrimPrefix(creds.BasicAuth(), "Basic ")
	if strings.Contains(err.Error(), encoded) || strings.Contains(err.Error(), creds.Password) {
		t.Fatalf("credentials leaked: %v", err)
	}
}
