/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package git

import (
	"strconv"
	"strings"

	"github.com/mikeb26/forgectl/internal/scm"
)

// parsePorcelainV2 reads the output of `git status --porcelain=v2 --branch`.
func parsePorcelainV2(out string) scm.Status {
	var st scm.Status
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "# branch.head ") {
			st.Branch = strings.TrimSpace(strings.TrimPrefix(line, "# branch.head "))
			continue
		}
		if strings.HasPrefix(line, "# branch.upstream ") {
			st.Upstream = strings.TrimSpace(strings.TrimPrefix(line, "# branch.upstream "))
			continue
		}
		if strings.HasPrefix(line, "# branch.ab ") {
			ab := strings.TrimSpace(strings.TrimPrefix(line, "# branch.ab "))
			for _, p := range strings.Fields(ab) {
				if strings.HasPrefix(p, "+") {
					if n, err := strconv.Atoi(strings.TrimPrefix(p, "+")); err == nil {
						st.Ahead = n
					}
				}
				if strings.HasPrefix(p, "-") {
					if n, err := strconv.Atoi(strings.TrimPrefix(p, "-")); err == nil {
						st.Behind = n
					}
				}
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, "1 ") || strings.HasPrefix(line, "2 "):
			fields := strings.Fields(line)
			if len(fields) >= 2 && len(fields[1]) >= 2 {
				xy := fields[1]
				if xy[0] != '.' {
					st.Staged = true
				}
				if xy[1] != '.' {
					st.Unstaged = true
				}
			}
		case strings.HasPrefix(line, "u "):
			st.Staged = true
			st.Unstaged = true
		case strings.HasPrefix(line, "? "):
			st.Untracked = true
		}
	}
	return st
}
