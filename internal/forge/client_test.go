/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package forge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method      string
	path        string
	contentType string
	auth        string
	requestID   string
	body        string
}

func newTestServer(t *testing.T, status int, respBody string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var mu sync.Mutex
	reqs := make([]recordedRequest, 0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		defer mu.Unlock()
		reqs = append(reqs, recordedRequest{
			method:      r.Method,
			path:        r.URL.EscapedPath(),
			contentType: r.Header.Get("Content-Type"),
			auth:        r.Header.Get("Authorization"),
			requestID:   r.Header.Get(RequestIDHeader),
			body:        string(body),
		})
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return srv, &reqs
}

func TestClientVersion(t *testing.T) {
	srv, reqs := newTestServer(t, http.StatusOK,
		`{"backendVersion":"2.3.88","forgeVersion":"3.6.1.Final"}`)

	c := NewClient(srv.URL + "/")
	v, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.3.88", v.BackendVersion)
	assert.Equal(t, "3.6.1.Final", v.ForgeVersion)

	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodGet, (*reqs)[0].method)
	assert.Equal(t, "/api/forge/version", (*reqs)[0].path)
	assert.NotEmpty(t, (*reqs)[0].requestID)
	assert.Empty(t, (*reqs)[0].auth)
}

func TestClientCommandNames(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `["devops-edit","obsidian-new-quickstart"]`)

	c := NewClient(srv.URL)
	names, err := c.CommandNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"devops-edit", "obsidian-new-quickstart"}, names)
}

func TestClientCommandInputEscapesName(t *testing.T) {
	srv, reqs := newTestServer(t, http.StatusOK,
		`{"metadata":{"id":"a b","name":"a b","enabled":true},"inputs":[{"name":"named"}]}`)

	c := NewClient(srv.URL)
	c.Token = "s3cr3t"
	info, err := c.CommandInput(context.Background(), "a b")
	require.NoError(t, err)
	require.NotNil(t, info.Metadata)
	assert.Equal(t, "a b", info.Metadata.Name)
	assert.Len(t, info.Inputs, 1)

	require.Len(t, *reqs, 1)
	assert.Equal(t, "/api/forge/commands/a%20b", (*reqs)[0].path)
	assert.Equal(t, "Bearer s3cr3t", (*reqs)[0].auth)
}

func TestClientCommandInputEmptyName(t *testing.T) {
	c := NewClient("http://unused")
	_, err := c.CommandInput(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyCommandName)
}

func TestClientValidatePostsRequest(t *testing.T) {
	srv, reqs := newTestServer(t, http.StatusOK,
		`{"state":{"valid":true,"canMoveToNextStep":true},"inputs":[{"name":"type","valueChoices":["vertx","spring-boot"]}]}`)

	c := NewClient(srv.URL)
	req := &ExecutionRequest{
		Namespace: "myproject",
		Inputs:    []InputValueDTO{{Name: "named", Value: "demo"}},
	}
	req.SetStepIndex(1)
	res, err := c.Validate(context.Background(), "obsidian-new-quickstart", req)
	require.NoError(t, err)
	assert.True(t, res.Valid())
	assert.True(t, res.CanMoveToNextStep())
	assert.False(t, res.CanExecute())
	require.Len(t, res.Inputs, 1)
	assert.Equal(t, []any{"vertx", "spring-boot"}, res.Inputs[0].ValueChoices)

	require.Len(t, *reqs, 1)
	got := (*reqs)[0]
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/forge/commands/obsidian-new-quickstart/validate", got.path)
	assert.Equal(t, "application/json", got.contentType)

	var sent ExecutionRequest
	require.NoError(t, json.Unmarshal([]byte(got.body), &sent))
	assert.Equal(t, "myproject", sent.Namespace)
	assert.Equal(t, 1, sent.StepNumber())
	assert.Equal(t, "demo", sent.Inputs[0].Value)
}

func TestClientNextStepDecodesEmbeddedResult(t *testing.T) {
	srv, reqs := newTestServer(t, http.StatusOK,
		`{"state":{"valid":true,"canExecute":true},"inputs":[{"name":"pipeline"}]}`)

	c := NewClient(srv.URL)
	res, err := c.NextStep(context.Background(), "cmd", &ExecutionRequest{})
	require.NoError(t, err)
	assert.True(t, res.CanExecute())
	assert.Equal(t, "pipeline", res.Inputs[0].Name)
	assert.Equal(t, "/api/forge/commands/cmd/next", (*reqs)[0].path)
}

func TestClientValidateReturnsAPIError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusInternalServerError, `{"message":"boom"}`)

	c := NewClient(srv.URL)
	_, err := c.Validate(context.Background(), "cmd", &ExecutionRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, `{"message":"boom"}`, apiErr.Body)
	assert.Contains(t, apiErr.Error(), "validate cmd")
}

func TestClientDecodeFailure(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `not json`)

	c := NewClient(srv.URL)
	_, err := c.Version(context.Background())
	assert.ErrorIs(t, err, ErrFailedToDecodeBody)
}

func TestClientExecuteDoesNotFailOnStatus(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusBadRequest, `{"error":"invalid"}`)

	c := NewClient(srv.URL)
	res, err := c.Execute(context.Background(), "cmd", &ExecutionRequest{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.False(t, res.Successful())
	assert.JSONEq(t, `{"error":"invalid"}`, string(res.JSON))
}

func TestClientExecuteFormEncodesValues(t *testing.T) {
	srv, reqs := newTestServer(t, http.StatusOK, `done`)

	c := NewClient(srv.URL)
	form := FormFromInputs([]InputValueDTO{
		{Name: "named", Value: "demo"},
		{Name: "count", Value: 3},
		{Name: "empty", Value: nil},
	})
	res, err := c.ExecuteForm(context.Background(), "cmd", form)
	require.NoError(t, err)
	assert.True(t, res.Successful())
	assert.Equal(t, "done", res.Entity)
	assert.Nil(t, res.JSON)

	got := (*reqs)[0]
	assert.Equal(t, "application/x-www-form-urlencoded", got.contentType)
	sent, err := url.ParseQuery(got.body)
	require.NoError(t, err)
	assert.Equal(t, "demo", sent.Get("named"))
	assert.Equal(t, "3", sent.Get("count"))
	assert.False(t, sent.Has("empty"))
}

func TestClientReusesRequestIDFromContext(t *testing.T) {
	srv, reqs := newTestServer(t, http.StatusOK, `[]`)

	ctx, id := EnsureRequestID(context.Background())
	c := NewClient(srv.URL)
	_, err := c.CommandNames(ctx)
	require.NoError(t, err)
	_, err = c.CommandNames(ctx)
	require.NoError(t, err)

	require.Len(t, *reqs, 2)
	assert.Equal(t, id, (*reqs)[0].requestID)
	assert.Equal(t, id, (*reqs)[1].requestID)
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	_, err := c.CommandNames(context.Background())
	assert.ErrorIs(t, err, ErrFailedToCallForge)
}
