package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow-cli/internal/common"
	"github.com/taskflowhq/taskflow-cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, "error")
}

func newTestCore(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, func() string { return token }, testLogger())
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, msg string, data any, statusCode int) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Envelope{Message: msg, Data: raw, StatusCode: statusCode})
}

func TestClient_SetsHeaders(t *testing.T) {
	var gotAuth, gotReqID, gotContentType string

	core := newTestCore(t, "tok123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get(common.RequestIDHeaderName)
		gotContentType = r.Header.Get("Content-Type")
		writeEnvelope(t, w, "ok", nil, http.StatusOK)
	})

	_, err := core.do(context.Background(), http.MethodGet, "/ping", nil, http.StatusOK)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_NoAuthHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	core := newTestCore(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(t, w, "ok", nil, http.StatusOK)
	})

	_, err := core.do(context.Background(), http.MethodGet, "/ping", nil, http.StatusOK)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_EnvelopeStatusIsAuthoritative(t *testing.T) {
	// transport says 200 but the envelope carries a failure
	core := newTestCore(t, "t", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, "project not found", nil, http.StatusNotFound)
	})

	_, err := core.do(context.Background(), http.MethodGet, "/x", nil, http.StatusOK)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "project not found")
}

func TestClient_UnauthorizedSentinel(t *testing.T) {
	core := newTestCore(t, "stale", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, "token expired", nil, http.StatusUnauthorized)
	})

	_, err := core.do(context.Background(), http.MethodGet, "/x", nil, http.StatusOK)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_BareUnauthorizedWithoutEnvelope(t *testing.T) {
	core := newTestCore(t, "stale", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := core.do(context.Background(), http.MethodGet, "/x", nil, http.StatusOK)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	core := NewClient(srv.URL, time.Second, func() string { return "" }, testLogger())
	_, err := core.do(context.Background(), http.MethodGet, "/x", nil, http.StatusOK)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_MalformedBodyIsDecodeError(t *testing.T) {
	core := newTestCore(t, "t", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>gateway error</html>")
	})

	_, err := core.do(context.Background(), http.MethodGet, "/x", nil, http.StatusOK)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "decode")
}

func TestClient_ContextCancellation(t *testing.T) {
	core := newTestCore(t, "t", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := core.do(ctx, http.MethodGet, "/slow", nil, http.StatusOK)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrUnavailable))
}

func TestCall_DecodesEnvelopeData(t *testing.T) {
	core := newTestCore(t, "t", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, "ok", map[string]any{"id": 5, "name": "x"}, http.StatusOK)
	})

	type payload struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	got, msg, err := call[payload](context.Background(), core, http.MethodGet, "/x", nil, http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, payload{ID: 5, Name: "x"}, got)
	assert.Equal(t, "ok", msg)
}

func TestCall_NullDataYieldsZeroValue(t *testing.T) {
	core := newTestCore(t, "t", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, "deleted", nil, http.StatusOK)
	})

	got, msg, err := call[int64](context.Background(), core, http.MethodDelete, "/x", nil, http.StatusOK)
	require.NoError(t, err)
	assert.Zero(t, got)
	assert.Equal(t, "deleted", msg)
}
