package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/domain"
	"calcpad/internal/protocol/arith"
	"calcpad/internal/server"
	"calcpad/internal/services/keypad"
)

// syncBuffer guards log output written by handler goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestServer(t *testing.T, logs *syncBuffer) *httptest.Server {
	t.Helper()
	var log *slog.Logger
	if logs != nil {
		log = slog.New(slog.NewTextHandler(logs, nil))
	}
	eval := arith.Evaluator{}
	srv := server.New(server.Config{MaxBodyBytes: 256}, eval, keypad.New(eval, nil), log)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestEvaluate_OK(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := postJSON(t, ts.URL+"/v1/evaluate", domain.EvaluateRequest{Expression: "2 * (3 + 4)"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var out domain.EvaluateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "14", out.Result)
}

func TestEvaluate_ErrorKinds(t *testing.T) {
	ts := newTestServer(t, nil)
	cases := map[string]string{
		"abc": "invalid_characters",
		"2+":  "evaluation_failed",
		"5/0": "non_finite",
	}
	for expr, kind := range cases {
		resp := postJSON(t, ts.URL+"/v1/evaluate", domain.EvaluateRequest{Expression: expr})
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, expr)

		var out domain.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "Error", out.Error)
		assert.Equal(t, kind, out.Kind)
	}
}

func TestEvaluate_BadBodies(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Post(ts.URL+"/v1/evaluate", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	big := postJSON(t, ts.URL+"/v1/evaluate", domain.EvaluateRequest{Expression: strings.Repeat("1+", 200) + "1"})
	assert.Equal(t, http.StatusRequestEntityTooLarge, big.StatusCode)
}

func TestPress_KeyAndButton(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := postJSON(t, ts.URL+"/v1/press", domain.PressRequest{Buffer: "12", Key: "+"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out domain.PressResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, domain.PressResponse{Buffer: "12+", Handled: true}, out)

	resp = postJSON(t, ts.URL+"/v1/press", domain.PressRequest{
		Buffer: "6×7",
		Button: &domain.Button{Action: domain.ButtonEquals, Text: "="},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, domain.Buffer("42"), out.Buffer)

	resp = postJSON(t, ts.URL+"/v1/press", domain.PressRequest{Buffer: domain.ErrorMarker, Key: "Backspace"})
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, domain.PressResponse{Buffer: "", Handled: true}, out)

	resp = postJSON(t, ts.URL+"/v1/press", domain.PressRequest{Buffer: "1", Key: "q"})
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, domain.PressResponse{Buffer: "1", Handled: false}, out)
}

func TestPress_RequiresExactlyOneInput(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := postJSON(t, ts.URL+"/v1/press", domain.PressRequest{Buffer: "1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/v1/press", domain.PressRequest{
		Buffer: "1",
		Key:    "1",
		Button: &domain.Button{Action: domain.ButtonClear},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouting_HealthNotFoundMethod(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)

	resp3, err := http.Get(ts.URL + "/v1/evaluate")
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp3.StatusCode)
}

func TestAccessLog_RecordsRequest(t *testing.T) {
	var logs syncBuffer
	ts := newTestServer(t, &logs)
	postJSON(t, ts.URL+"/v1/evaluate", domain.EvaluateRequest{Expression: "1+1"})

	line := logs.String()
	assert.Contains(t, line, "method=POST")
	assert.Contains(t, line, "path=/v1/evaluate")
	assert.Contains(t, line, "status=200")
	assert.Contains(t, line, "bytes=")
	assert.Contains(t, line, "duration=")
}

func TestServe_StopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	eval := arith.Evaluator{}
	srv := server.New(server.Config{ShutdownTimeout: time.Second}, eval, keypad.New(eval, nil), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
