package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskflowhq/taskflow-cli/internal/common"
	"github.com/taskflowhq/taskflow-cli/internal/logging"
)

// TokenFunc yields the current bearer token, or "" when logged out.
type TokenFunc func() string

// Envelope mirrors the uniform wrapper around every API response.
type Envelope struct {
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
}

// Client is the transport core shared by the per-role gateway clients.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   TokenFunc
	log     logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, token TokenFunc, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		token:   token,
		log:     log.With("component", "api"),
	}
}

// do issues one request and unwraps the envelope. body==nil sends no
// payload. The envelope statusCode decides success: it must be one of
// expect (usually 200, plus 201 for creations). Failures map to
// ErrUnavailable, ErrUnauthorized or *Error.
func (c *Client) do(ctx context.Context, method, path string, body any, expect ...int) (*Envelope, error) {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		c.log.Warn(ctx, "request failed without response",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, ErrUnauthorized
		}
		c.log.Warn(ctx, "malformed response body",
			"method", method, "path", path, "request_id", requestID,
			"http_status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("failed to decode response (http status %d): %w", resp.StatusCode, err)
	}

	status := env.StatusCode
	if status == 0 {
		status = resp.StatusCode
	}

	for _, want := range expect {
		if status == want {
			return &env, nil
		}
	}

	if status == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	c.log.Debug(ctx, "request rejected",
		"method", method, "path", path, "request_id", requestID,
		"status", status, "message", env.Message)
	return nil, &Error{StatusCode: status, Message: env.Message}
}

// call issues the request and decodes the envelope data into T. The
// envelope message accompanies the result so views can surface it.
func call[T any](ctx context.Context, c *Client, method, path string, body any, expect ...int) (T, string, error) {
	var out T

	env, err := c.do(ctx, method, path, body, expect...)
	if err != nil {
		return out, "", err
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return out, env.Message, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, "", fmt.Errorf("failed to decode response data: %w", err)
	}
	return out, env.Message, nil
}
