/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package forge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is the net/http implementation of API.
type Client struct {
	// BaseURL is the root of the forge service, e.g. http://fabric8-forge.
	BaseURL string
	// Token, when set, is sent as a bearer token.
	Token      string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

var _ API = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 2 * time.Minute},
		Logger:     zap.NewNop(),
	}
}

func (c *Client) Version(ctx context.Context) (*VersionDTO, error) {
	ret := &VersionDTO{}
	if err := c.getJSON(ctx, "version", "/version", ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Client) CommandNames(ctx context.Context) ([]string, error) {
	ret := make([]string, 0)
	if err := c.getJSON(ctx, "commandNames", "/commandNames", &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Client) CommandInput(ctx context.Context, name string) (*CommandInputDTO, error) {
	path, err := commandPath(name, "")
	if err != nil {
		return nil, err
	}
	ret := &CommandInputDTO{}
	if err := c.getJSON(ctx, "commandInput "+name, path, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Client) Validate(ctx context.Context, name string,
	req *ExecutionRequest) (*ValidationResult, error) {

	path, err := commandPath(name, "validate")
	if err != nil {
		return nil, err
	}
	ret := &ValidationResult{}
	if err := c.postJSON(ctx, "validate "+name, path, req, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Client) NextStep(ctx context.Context, name string,
	req *ExecutionRequest) (*NextStepResult, error) {

	path, err := commandPath(name, "next")
	if err != nil {
		return nil, err
	}
	ret := &NextStepResult{}
	if err := c.postJSON(ctx, "next "+name, path, req, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Client) Execute(ctx context.Context, name string,
	req *ExecutionRequest) (*ExecutionResult, error) {

	path, err := commandPath(name, "execute")
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToCallForge, err)
	}
	status, entity, err := c.do(ctx, "execute "+name, http.MethodPost, path,
		bytes.NewReader(body), "application/json")
	if err != nil {
		return nil, err
	}
	return NewExecutionResult(status, entity), nil
}

func (c *Client) ExecuteForm(ctx context.Context, name string,
	form url.Values) (*ExecutionResult, error) {

	path, err := commandPath(name, "execute")
	if err != nil {
		return nil, err
	}
	status, entity, err := c.do(ctx, "execute "+name, http.MethodPost, path,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}
	return NewExecutionResult(status, entity), nil
}

func commandPath(name string, action string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyCommandName
	}
	path := "/commands/" + url.PathEscape(name)
	if action != "" {
		path += "/" + action
	}
	return path, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	status, body, err := c.do(ctx, op, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return decodeResponse(op, status, body, out)
}

func (c *Client) postJSON(ctx context.Context, op, path string, in any, out any) error {
	reqBody, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToCallForge, err)
	}
	status, body, err := c.do(ctx, op, http.MethodPost, path,
		bytes.NewReader(reqBody), "application/json")
	if err != nil {
		return err
	}
	return decodeResponse(op, status, body, out)
}

func decodeResponse(op string, status int, body []byte, out any) error {
	if status < 200 || status >= 300 {
		return &APIError{
			Op:         op,
			StatusCode: status,
			Status:     fmt.Sprintf("%v %v", status, http.StatusText(status)),
			Body:       string(body),
		}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v: %w", ErrFailedToDecodeBody, op, err)
	}
	return nil
}

// do performs a single request and returns the status and full entity.
func (c *Client) do(ctx context.Context, op, method, path string,
	body io.Reader, contentType string) (int, []byte, error) {

	ctx, reqID := EnsureRequestID(ctx)
	logger := c.logger().With(zap.String("op", op), zap.String("request_id", reqID))

	target := c.BaseURL + APIPath + path
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v: %w", ErrFailedToCallForge, op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, reqID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.Token)
	}

	logger.Debug("forge request", zap.String("method", method),
		zap.String("url", target))

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	httpResp, err := httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v: %w", ErrFailedToCallForge, op, err)
	}
	defer httpResp.Body.Close()

	content, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v: failed to read response body: %w",
			ErrFailedToCallForge, op, err)
	}

	logger.Debug("forge response", zap.Int("status", httpResp.StatusCode),
		zap.Int("body_len", len(content)))

	return httpResp.StatusCode, content, nil
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
