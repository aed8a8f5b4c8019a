/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package jenkins

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWaiter(t *testing.T, server Server, jenkinsURL string) (*Waiter, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &Waiter{
		Server:       server,
		JenkinsURL:   jenkinsURL,
		PollInterval: time.Millisecond,
		StartTimeout: 200 * time.Millisecond,
		Out:          out,
	}, out
}

func TestWaitForBuildStartPollsUntilReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := NewMockServer(ctrl)

	gomock.InOrder(
		server.EXPECT().LastBuild(gomock.Any(), "proj").Return(nil, ErrJobNotFound),
		server.EXPECT().LastBuild(gomock.Any(), "proj").Return(nil, nil),
		server.EXPECT().LastBuild(gomock.Any(), "proj").Return(&Build{Job: "proj", Number: 1,
			URL: "http://jenkins/job/proj/1/"}, nil),
		server.EXPECT().LastBuild(gomock.Any(), "proj").Return(&Build{Job: "proj", Number: 2,
			URL: "http://jenkins/job/proj/UNKNOWN/"}, nil),
		server.EXPECT().LastBuild(gomock.Any(), "proj").Return(&Build{Job: "proj", Number: 2,
			URL: "http://jenkins/job/proj/2/", Building: true}, nil),
	)

	w, _ := newTestWaiter(t, server, "http://jenkins/")
	b, err := w.WaitForBuildStart(context.Background(), "proj", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), b.Number)
}

func TestWaitForBuildStartTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := NewMockServer(ctrl)
	server.EXPECT().LastBuild(gomock.Any(), "proj").Return(nil, nil).AnyTimes()

	w, _ := newTestWaiter(t, server, "http://jenkins/")
	w.StartTimeout = 5 * time.Millisecond
	_, err := w.WaitForBuildStart(context.Background(), "proj", 0)
	assert.ErrorIs(t, err, ErrBuildNotStarted)
}

func TestWaitForBuildStartStopsOnOtherErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := NewMockServer(ctrl)
	boom := errors.New("boom")
	server.EXPECT().LastBuild(gomock.Any(), "proj").Return(nil, boom)

	w, _ := newTestWaiter(t, server, "http://jenkins/")
	_, err := w.WaitForBuildStart(context.Background(), "proj", 1)
	assert.ErrorIs(t, err, boom)
}

func TestWaitForBuildStartHonoursContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := NewMockServer(ctrl)
	server.EXPECT().LastBuild(gomock.Any(), "proj").Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w, _ := newTestWaiter(t, server, "http://jenkins/")
	w.StartTimeout = time.Hour
	_, err := w.WaitForBuildStart(ctx, "proj", 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitForBuildCompletionTailsLog(t *testing.T) {
	log := &growingLog{}
	log.add("Started")
	srv := httptest.NewServer(log)
	defer srv.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := NewMockServer(ctrl)

	started := &Build{Job: "proj", Number: 3, URL: "job/proj/3/", Building: true}
	server.EXPECT().LastBuild(gomock.Any(), "proj").Return(started, nil)
	gomock.InOrder(
		server.EXPECT().Build(gomock.Any(), "proj", int64(3)).DoAndReturn(
			func(context.Context, string, int64) (*Build, error) {
				log.add("Building")
				return started, nil
			}),
		server.EXPECT().Build(gomock.Any(), "proj", int64(3)).DoAndReturn(
			func(context.Context, string, int64) (*Build, error) {
				log.add("Finished: SUCCESS")
				return &Build{Job: "proj", Number: 3, URL: started.URL,
					Result: ResultSuccess}, nil
			}),
	)

	w, out := newTestWaiter(t, server, srv.URL)
	b, err := w.WaitForBuildCompletion(context.Background(), "proj", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, b.Succeeded())
	assert.Equal(t, "Build:3: Started\nBuild:3: Building\n", out.String())
}

func TestWaitForBuildCompletionFailures(t *testing.T) {
	srv := httptest.NewServer(&growingLog{})
	defer srv.Close()

	for _, tc := range []struct {
		name  string
		final *Build
		want  error
	}{
		{"failed", &Build{Job: "proj", Number: 1, URL: "job/proj/1", Result: "FAILURE"},
			ErrBuildFailed},
		{"still running", &Build{Job: "proj", Number: 1, URL: "job/proj/1", Building: true},
			ErrBuildStillRunning},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := NewMockServer(ctrl)
			server.EXPECT().LastBuild(gomock.Any(), "proj").Return(tc.final, nil)
			server.EXPECT().Build(gomock.Any(), "proj", int64(1)).Return(tc.final, nil).MinTimes(1)

			w, _ := newTestWaiter(t, server, srv.URL)
			b, err := w.WaitForBuildCompletion(context.Background(), "proj", 0, 0)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.final, b)
		})
	}
}

// consolePaths records which console logs were read.
type consolePaths struct {
	mu    sync.Mutex
	paths []string
}

func (c *consolePaths) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, r.URL.Path)
	_, _ = w.Write([]byte("line of " + r.URL.Path + "\n"))
}

func (c *consolePaths) seen() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func TestTailFollowsRequestedBuild(t *testing.T) {
	console := &consolePaths{}
	srv := httptest.NewServer(console)
	defer srv.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := NewMockServer(ctrl)
	// LastBuild would report build 7; an explicit number must not consult it.
	server.EXPECT().Build(gomock.Any(), "proj", int64(5)).Return(&Build{Job: "proj",
		Number: 5, URL: "job/proj/5/", Result: ResultSuccess}, nil).Times(2)

	w, out := newTestWaiter(t, server, srv.URL)
	b, err := w.Tail(context.Background(), "proj", 5, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(5), b.Number)
	assert.Equal(t, "Build:5: line of /job/proj/5/consoleText\n", out.String())
	for _, p := range console.seen() {
		assert.Equal(t, "/job/proj/5/consoleText", p)
	}
}

func TestTailDefaultsToLastBuild(t *testing.T) {
	console := &consolePaths{}
	srv := httptest.NewServer(console)
	defer srv.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := NewMockServer(ctrl)
	last := &Build{Job: "proj", Number: 7, URL: "job/proj/7/", Result: ResultSuccess}
	server.EXPECT().LastBuild(gomock.Any(), "proj").Return(last, nil)
	server.EXPECT().Build(gomock.Any(), "proj", int64(7)).Return(last, nil)

	w, out := newTestWaiter(t, server, srv.URL)
	b, err := w.Tail(context.Background(), "proj", 0, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(7), b.Number)
	assert.Equal(t, "Build:7: line of /job/proj/7/consoleText\n", out.String())
}

func TestTailWithoutBuilds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := NewMockServer(ctrl)
	server.EXPECT().LastBuild(gomock.Any(), "proj").Return(nil, nil)

	w, _ := newTestWaiter(t, server, "http://jenkins/")
	_, err := w.Tail(context.Background(), "proj", 0, time.Minute)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestFollowBuildReportsFailedResult(t *testing.T) {
	srv := httptest.NewServer(&consolePaths{})
	defer srv.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := NewMockServer(ctrl)
	failed := &Build{Job: "proj", Number: 4, URL: "job/proj/4/", Result: "UNSTABLE"}
	server.EXPECT().Build(gomock.Any(), "proj", int64(4)).Return(failed, nil)

	w, _ := newTestWaiter(t, server, srv.URL)
	b, err := w.FollowBuild(context.Background(), "proj",
		&Build{Job: "proj", Number: 4, URL: "job/proj/4/", Building: true}, time.Minute)
	assert.ErrorIs(t, err, ErrBuildFailed)
	assert.Equal(t, failed, b)
}
