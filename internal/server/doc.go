// Package server implements calcd, the HTTP front end for the calculator.
//
// HTTP API
//
//	POST /v1/evaluate {"expression": "2*(3+4)"}
//	    200 {"result": "14"}
//	    422 {"error": "Error", "kind": "invalid_characters" | "evaluation_failed" | "non_finite"}
//
//	POST /v1/press {"buffer": "12", "key": "+"}
//	POST /v1/press {"buffer": "12", "button": {"action": "operator", "text": "×"}}
//	    200 {"buffer": "12+", "handled": true}
//	    The buffer travels with every request; the server keeps no display state.
//
//	GET /healthz
//	    200 {"status": "ok"}
//
// Behaviour
//
//   - Responses are JSON. Non-2xx statuses carry {"error": "..."}.
//   - Bodies larger than Config.MaxBodyBytes are rejected with 413.
//   - An access log records method, path, remote, status, bytes and duration
//     for each request.
//   - Configuration comes from CALCPAD_* environment variables; see Config.
package server
