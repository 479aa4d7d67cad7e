package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"calcpad/internal/domain"
)

// DefaultTimeout bounds calls made through the context-free Evaluate.
const DefaultTimeout = 5 * time.Second

// HTTP is a calcd client.
type HTTP struct {
	Base    string
	HTTP    *http.Client
	Timeout time.Duration
}

// NewHTTP returns a client for the server at base. A nil client uses
// http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client, Timeout: DefaultTimeout}
}

// Evaluate implements domain.Evaluator using the client's default timeout.
func (c *HTTP) Evaluate(expr string) (string, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return c.EvaluateContext(ctx, expr)
}

// EvaluateContext asks the server to evaluate expr.
func (c *HTTP) EvaluateContext(ctx context.Context, expr string) (string, error) {
	var out domain.EvaluateResponse
	if err := c.post(ctx, "/v1/evaluate", domain.EvaluateRequest{Expression: expr}, &out, expr); err != nil {
		return "", err
	}
	return out.Result, nil
}

// PressContext applies in to buf on the server and returns the next buffer.
func (c *HTTP) PressContext(ctx context.Context, buf domain.Buffer, in domain.Input) (domain.PressResponse, error) {
	req := domain.PressRequest{Buffer: buf, Button: in.Button, Key: in.Key}
	var out domain.PressResponse
	if err := c.post(ctx, "/v1/press", req, &out, ""); err != nil {
		return domain.PressResponse{}, err
	}
	return out, nil
}

// Health returns nil when the server reports ok.
func (c *HTTP) Health(ctx context.Context) error {
	u := c.Base + "/healthz"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("calcd get %s: %s", u, resp.Status)
	}
	return nil
}

// post sends in as JSON and decodes a 2xx body into out. expr is attached to
// evaluation errors decoded from a 422.
func (c *HTTP) post(ctx context.Context, path string, in, out any, expr string) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var e domain.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil {
			if kind, ok := domain.ParseEvalErrorKind(e.Kind); ok {
				return &domain.EvalError{Kind: kind, Expr: expr}
			}
		}
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("calcd post %s: %s", u, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

var _ domain.Evaluator = (*HTTP)(nil)
