// Package controller contains HTTP middlewares and response helpers used by
// the API server.
//
// Middlewares:
//   - WithCORS: CORS headers and OPTIONS preflight short-circuit.
//   - WithLogger: request-scoped logger, request ID and access log.
//
// Helpers:
//   - PprofMux: router exposing net/http/pprof.
//   - WriteJSON, WriteError: jx-encoded responses, errors mapped by serrors kind.
package controller
