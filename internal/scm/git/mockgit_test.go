/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package git

import (
	_ "embed"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

//go:embed mockgit.sh
var mockGitText string

// setupMockGit puts the mockgit.sh shim at the front of PATH and returns the
// path of the file it logs each invocation to.
func setupMockGit(t *testing.T, env map[string]string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("mock git shim requires a POSIX shell")
	}

	rootDir := t.TempDir()
	binDir := filepath.Join(rootDir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}

	logPath := filepath.Join(rootDir, "git.log")
	if err := os.WriteFile(filepath.Join(binDir, "git"), []byte(mockGitText), 0o755); err != nil {
		t.Fatalf("write mock git: %v", err)
	}

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("MOCK_GIT_LOG", logPath)
	for k, v := range env {
		t.Setenv(k, v)
	}
	return logPath
}

func readMockGitLog(t *testing.T, logPath string) []string {
	t.Helper()
	bs, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read mock git log: %v", err)
	}
	lines := make([]string, 0)
	for _, line := range strings.Split(string(bs), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
