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

const testMessage = "dummy commit to trigger a rebuild"

func TestCommit_ReturnsUntrackedFilesErrorWhenMissingInOptions(t *testing.T) {
	setupMockGit(t, map[string]string{
		"MOCK_GIT_UNTRACKED":    "a.txt\nb.txt\n",
		"MOCK_GIT_STAGED_FILES": "staged.txt\n",
	})

	c := NewClient()
	untracked, err := c.Commit(context.Background(), "/tmp/repo", scm.CommitOptions{
		Message:          testMessage,
		IncludeUntracked: map[string]bool{"a.txt": true},
	})
	if err == nil || !errors.Is(err, scm.ErrUntrackedFiles) {
		t.Fatalf("expected scm.ErrUntrackedFiles, got %v", err)
	}
	if untracked == nil || len(untracked.Filename) != 2 {
		t.Fatalf("expected untracked list, got %+v", untracked)
	}
}

func TestCommit_StagesTrackedAndSelectedUntracked(t *testing.T) {
	logPath := setupMockGit(t, map[string]string{
		"MOCK_GIT_UNTRACKED":    "a.txt\nb.txt\n",
		"MOCK_GIT_STAGED_FILES": "tracked.go\na.txt\n",
	})

	c := NewClient()
	_, err := c.Commit(context.Background(), "/tmp/repo", scm.CommitOptions{
		Message:          testMessage,
		IncludeUntracked: map[string]bool{"a.txt": true, "b.txt": false},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	logs := readMockGitLog(t, logPath)
	joined := strings.Join(logs, "\n")
	if !strings.Contains(joined, "-C /tmp/repo add -u") {
		t.Fatalf("expected git add -u in logs: %#v", logs)
	}
	if !strings.Contains(joined, "add -- a.txt") {
		t.Fatalf("expected git add -- a.txt in logs: %#v", logs)
	}
	if strings.Contains(joined, "add -- b.txt") {
		t.Fatalf("did not expect b.txt to be added: %#v", logs)
	}
	if !strings.Contains(joined, "diff --cached --name-only") {
		t.Fatalf("expected staged check in logs: %#v", logs)
	}
	last := logs[len(logs)-1]
	if last != "-C /tmp/repo commit -m "+testMessage {
		t.Fatalf("unexpected commit invocation: %q", last)
	}
}

func TestCommit_AddAllWithAuthor(t *testing.T) {
	logPath := setupMockGit(t, map[string]string{
		"MOCK_GIT_UNTRACKED":    "ReadMe.md\n",
		"MOCK_GIT_STAGED_FILES": "ReadMe.md\n",
	})

	c := NewClient()
	_, err := c.Commit(context.Background(), "/tmp/repo", scm.CommitOptions{
		Message: testMessage,
		Author:  scm.Author{Name: "gogsadmin", Email: "gogsadmin@example.com"},
		AddAll:  true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	logs := readMockGitLog(t, logPath)
	want := []string{
		"-C /tmp/repo add -A",
		"-C /tmp/repo diff --cached --name-only",
		"-c user.name=gogsadmin -c user.email=gogsadmin@example.com -C /tmp/repo commit -m " +
			testMessage + " --author gogsadmin <gogsadmin@example.com>",
	}
	if strings.Join(logs, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected git calls:\n%v\nwant:\n%v", strings.Join(logs, "\n"),
			strings.Join(want, "\n"))
	}
}

func TestCommit_ReturnsNothingToCommit(t *testing.T) {
	setupMockGit(t, map[string]string{
		"MOCK_GIT_UNTRACKED":    "",
		"MOCK_GIT_STAGED_FILES": "\n",
	})

	c := NewClient()
	_, err := c.Commit(context.Background(), "/tmp/repo", scm.CommitOptions{
		Message:          testMessage,
		IncludeUntracked: map[string]bool{},
	})
	if err == nil || !errors.Is(err, scm.ErrNothingToCommit) {
		t.Fatalf("expected scm.ErrNothingToCommit, got %v", err)
	}
}

func TestCommit_RequiresMessage(t *testing.T) {
	c := NewClient()
	_, err := c.Commit(context.Background(), "/tmp/repo", scm.CommitOptions{AddAll: true})
	if !errors.Is(err, scm.ErrEmptyCommitMessage) {
		t.Fatalf("expected scm.ErrEmptyCommitMessage, got %v", err)
	}
}
