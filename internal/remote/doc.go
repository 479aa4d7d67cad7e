// Package remote provides an HTTP implementation of domain.Evaluator that
// talks to a calcd server.
//
// Supported operations:
//   - Evaluating an expression (POST /v1/evaluate).
//   - Applying a keypad input to a buffer (POST /v1/press).
//   - Checking server health (GET /healthz).
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Evaluation failures come back as *domain.EvalError with the kind
// the server reported. Other non-2xx statuses are returned as errors with the
// HTTP method, full URL and status text.
package remote
