/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package jenkins

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
)

const maxLogLine = 1024 * 1024

// TailResults records how much of a log has been seen so far.
type TailResults struct {
	Count    int
	LastLine string
}

// TailStart is the state before any line has been read.
var TailStart = TailResults{}

// IsNewLine reports whether the line at index was not seen by the tail that
// produced r. Logs only ever grow so the line count is enough.
func (r TailResults) IsNewLine(line string, index int) bool {
	return index >= r.Count
}

// TailLog reads the whole log at uri and calls fn for each line prev has not
// seen. It returns the state to pass to the next call.
func TailLog(ctx context.Context, client *http.Client, uri string, prev TailResults,
	fn func(line string)) (TailResults, error) {

	ret := TailResults{}
	err := readLog(ctx, client, uri, func(line string) {
		if prev.IsNewLine(line, ret.Count) {
			fn(line)
		}
		ret.LastLine = line
		ret.Count++
	})
	if err != nil {
		return prev, err
	}
	return ret, nil
}

// DumpLog calls fn for every line of the log at uri.
func DumpLog(ctx context.Context, client *http.Client, uri string, fn func(line string)) error {
	return readLog(ctx, client, uri, fn)
}

func readLog(ctx context.Context, client *http.Client, uri string, fn func(line string)) error {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return fmt.Errorf("%w: %v: %w", ErrFailedToReadLog, uri, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v: %w", ErrFailedToReadLog, uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %v: %v", ErrFailedToReadLog, uri, resp.Status)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLogLine)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v: %w", ErrFailedToReadLog, uri, err)
	}
	return nil
}
